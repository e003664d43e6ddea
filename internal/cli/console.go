// Package cli provides the line console and the interactive command shell
// of the video player.
package cli

import (
	"bufio"
	"fmt"
	"io"
)

// Console is a line-oriented terminal over a reader/writer pair. The player
// writes its reports through it and reads the search selection answer from
// it; the shell additionally uses Write for the prompt.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console reading from in and writing to out,
// typically stdin and stdout.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// WriteLine writes one line of output.
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// Write writes text without a trailing newline, for the prompt.
func (c *Console) Write(text string) {
	fmt.Fprint(c.out, text)
}

// ReadLine reads the next input line without its line ending. It returns
// io.EOF when the input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}
