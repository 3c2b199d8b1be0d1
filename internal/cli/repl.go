package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

const menu = `

================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New user
[q]	Quit
=> `

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
//
// Handlers report outcomes to the user themselves. A returned error is either
// a business rejection (already printed) or an *inputError when reading the
// user's answers failed.
type execIface interface {
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Statement(ctx context.Context) error
	NewUser(ctx context.Context) error
	NewAccount(ctx context.Context) error
	ListAccounts(ctx context.Context) error
}

// inputError marks a failure to read the user's answer to a prompt.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return "read input: " + e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// runREPL prints the menu, reads a command code and dispatches it to a,
// until the user quits or input ends.
//
// Prompt & Commands
//
//	d    deposit
//	s    withdraw
//	e    statement
//	nu   new user
//	nc   new account
//	lc   list accounts
//	q    quit
//
// Anything else prints the invalid-operation message. Business rejections
// returned by handlers do not stop the loop. Reaching end of input, at the
// menu or inside a command's prompts, ends the session with a nil error;
// other read failures are returned.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := GetSimpleText(reader, menu, w)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		var handler func(context.Context) error

		switch cmd {
		case "d":
			handler = a.Deposit
		case "s":
			handler = a.Withdraw
		case "e":
			handler = a.Statement
		case "nu":
			handler = a.NewUser
		case "nc":
			handler = a.NewAccount
		case "lc":
			handler = a.ListAccounts
		case "q":
			fmt.Fprintln(w, "Bye!")
			return nil
		default:
			fmt.Fprintln(w, msgInvalidOp)
			continue
		}

		if err := handler(ctx); err != nil {
			var ie *inputError
			if !errors.As(err, &ie) {
				continue
			}
			if errors.Is(ie, io.EOF) {
				fmt.Fprintln(w)
				return nil
			}
			return err
		}
	}
}
