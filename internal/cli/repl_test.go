package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	errs  map[string]error
}

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeExec) Deposit(context.Context) error      { return f.call("deposit") }
func (f *fakeExec) Withdraw(context.Context) error     { return f.call("withdraw") }
func (f *fakeExec) Statement(context.Context) error    { return f.call("statement") }
func (f *fakeExec) NewUser(context.Context) error      { return f.call("newuser") }
func (f *fakeExec) NewAccount(context.Context) error   { return f.call("newaccount") }
func (f *fakeExec) ListAccounts(context.Context) error { return f.call("listaccounts") }

func run(t *testing.T, exec execIface, input string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := runREPL(context.Background(), exec, bufio.NewReader(strings.NewReader(input)), &out)
	return out.String(), err
}

func TestRunREPL_DispatchesEveryCommand(t *testing.T) {
	exec := &fakeExec{}

	out, err := run(t, exec, strings.Join([]string{"d", "s", "e", "nu", "nc", "lc", "q", "d"}, "\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"deposit", "withdraw", "statement", "newuser", "newaccount", "listaccounts"}, exec.calls)
	assert.Contains(t, out, "Bye!")
	assert.Equal(t, 7, strings.Count(out, "================ MENU ================"))
}

func TestRunREPL_InvalidOperation(t *testing.T) {
	exec := &fakeExec{}

	out, err := run(t, exec, "x\n\nD\n q \nq\n")
	require.NoError(t, err)

	assert.Empty(t, exec.calls)
	assert.Equal(t, 3, strings.Count(out, msgInvalidOp), "'x', empty line and 'D' are invalid; ' q ' is trimmed to q")
}

func TestRunREPL_EOFEndsSession(t *testing.T) {
	exec := &fakeExec{}

	_, err := run(t, exec, "e\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"statement"}, exec.calls)
}

func TestRunREPL_BusinessErrorsDoNotStopLoop(t *testing.T) {
	exec := &fakeExec{errs: map[string]error{
		"withdraw":   common.ErrInsufficientBalance,
		"newaccount": common.ErrUserNotFound,
	}}

	_, err := run(t, exec, "s\nnc\ne\nq\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"withdraw", "newaccount", "statement"}, exec.calls)
}

func TestRunREPL_InputEOFInsideCommandEndsSession(t *testing.T) {
	exec := &fakeExec{errs: map[string]error{"deposit": &inputError{err: io.EOF}}}

	_, err := run(t, exec, "d\ne\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"deposit"}, exec.calls)
}

func TestRunREPL_InputFailureIsReturned(t *testing.T) {
	boom := errors.New("boom")
	exec := &fakeExec{errs: map[string]error{"newuser": &inputError{err: boom}}}

	_, err := run(t, exec, "nu\ne\n")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"newuser"}, exec.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	err := runREPL(ctx, exec, bufio.NewReader(strings.NewReader("d\n")), &out)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, exec.calls)
}
