package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InvalidInputNotice is printed after a rejected value, before re-prompting.
const InvalidInputNotice = "\n@@@ Invalid input, please try again. @@@"

// GetSimpleText prints prompt to w and reads a single line of input from
// reader. Surrounding whitespace is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetValidatedText keeps prompting until valid accepts the line and returns
// the first accepted value. A nil valid accepts anything.
//
// There is no retry limit and no way to cancel from the keyboard; the loop
// only ends early when reader fails (io.EOF once input is exhausted).
func GetValidatedText(reader *bufio.Reader, prompt string, w io.Writer, valid func(string) bool) (string, error) {
	for {
		text, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if valid == nil || valid(text) {
			return text, nil
		}
		if _, err := fmt.Fprintln(w, InvalidInputNotice); err != nil {
			return "", err
		}
	}
}
