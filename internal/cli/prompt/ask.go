// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrCancelled is returned when the user aborts an interactive prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Asker asks the user a free-form question. The validator consumes it to
// collect values it could not auto-detect.
type Asker interface {
	// Ask displays promptText and returns the entered line without the
	// trailing newline. EOF (e.g. Ctrl+D) returns "" with no error; the
	// caller treats an empty answer as "no value given".
	Ask(promptText string) (string, error)
}

// LineAsker reads answers line by line from a reader.
type LineAsker struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLineAsker creates a LineAsker using stdin and stdout.
func NewLineAsker() *LineAsker {
	return NewLineAskerWithIO(os.Stdin, os.Stdout)
}

// NewLineAskerWithIO creates a LineAsker with custom reader and writer for testing.
func NewLineAskerWithIO(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Ask implements Asker.
func (a *LineAsker) Ask(promptText string) (string, error) {
	fmt.Fprint(a.writer, promptText)

	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			// A partial line before EOF still counts as an answer
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
