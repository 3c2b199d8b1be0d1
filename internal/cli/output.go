package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is a test seam for terminal detection.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// console prints operation outcomes: successes in green between "===",
// failures in red between "@@@".
type console struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
}

func newConsole(w io.Writer, colored bool) *console {
	c := &console{
		w:       w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
	if colored {
		c.success.EnableColor()
		c.failure.EnableColor()
	} else {
		c.success.DisableColor()
		c.failure.DisableColor()
	}
	return c
}

func (c *console) Success(msg string) {
	fmt.Fprintln(c.w)
	c.success.Fprintf(c.w, "=== %s ===\n", msg)
}

func (c *console) Failure(msg string) {
	fmt.Fprintln(c.w)
	c.failure.Fprintf(c.w, "@@@ %s @@@\n", msg)
}

func (c *console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

func (c *console) Print(a ...any) {
	fmt.Fprint(c.w, a...)
}
