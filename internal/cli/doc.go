// Package cli provides the interactive GophBank console.
//
// It wires configuration, the session ledger and the customer registry into
// a menu-driven REPL. Each command gathers its inputs with prompts,
// re-prompting until identity numbers, dates and amounts are well-formed,
// then runs one ledger or registry operation and prints the outcome.
//
// Commands:
//   - d   deposit
//   - s   withdraw
//   - e   statement
//   - nu  new user
//   - nc  new account
//   - lc  list accounts
//   - q   quit
//
// The REPL is started via App.Run(ctx), which blocks until the user quits or
// standard input is closed. See App and runREPL for details.
package cli
