package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/dmitrijs2005/gophbank/internal/config"
	"github.com/dmitrijs2005/gophbank/internal/ledger"
	"github.com/dmitrijs2005/gophbank/internal/logging"
	"github.com/dmitrijs2005/gophbank/internal/registry"
	"github.com/dmitrijs2005/gophbank/internal/validation"
	"github.com/google/uuid"
)

// App is one console session: the shared ledger, the registry and the
// console streams.
type App struct {
	config   *config.Config
	logger   logging.Logger
	ledger   *ledger.Ledger
	registry *registry.Service
	reader   *bufio.Reader
	out      io.Writer
	console  *console
}

// NewApp builds a session reading commands from in and writing to out.
// Colors are used only when out is a terminal and c.NoColor is false.
func NewApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) *App {
	sessionID := uuid.NewString()

	repo := registry.NewMemoryRepository()
	svc := registry.NewService(repo, validation.New(), c.AgencyCode)

	return &App{
		config:   c,
		logger:   logger.With("session", sessionID),
		ledger:   ledger.New(c.WithdrawalLimit, c.MaxWithdrawals),
		registry: svc,
		reader:   bufio.NewReader(in),
		out:      out,
		console:  newConsole(out, !c.NoColor && isTerminal(out)),
	}
}

// Run starts the REPL and blocks until the user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info(ctx, "session started",
		"agency", a.config.AgencyCode,
		"withdrawal_limit", a.config.WithdrawalLimit.String(),
		"max_withdrawals", a.config.MaxWithdrawals,
	)

	err := runREPL(ctx, a, a.reader, a.out)
	if err != nil {
		a.logger.Error(ctx, "session aborted", "err", err)
		return err
	}

	a.logger.Info(ctx, "session finished",
		"balance", a.ledger.Balance.String(),
		"entries", len(a.ledger.Statement),
	)
	return nil
}

// ask prompts once and wraps read failures in *inputError.
func (a *App) ask(prompt string) (string, error) {
	return a.askValid(prompt, nil)
}

// askValid prompts until valid accepts the answer.
func (a *App) askValid(prompt string, valid func(string) bool) (string, error) {
	text, err := GetValidatedText(a.reader, prompt, a.out, valid)
	if err != nil {
		return "", &inputError{err: err}
	}
	return text, nil
}

// report prints and logs the outcome of an operation and returns err.
func (a *App) report(ctx context.Context, op string, err error, okMsg string, args ...any) error {
	if err == nil {
		a.logger.Info(ctx, op+" accepted", args...)
		a.console.Success(okMsg)
		return nil
	}

	if isRejection(err) {
		a.logger.Info(ctx, op+" rejected", append(args, "err", err)...)
	} else {
		a.logger.Error(ctx, op+" failed", append(args, "err", err)...)
	}
	a.console.Failure(failureMessage(err))
	return err
}
