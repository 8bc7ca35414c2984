// Package ui provides the line-oriented text interface of the game.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads newline-terminated answers and writes narrative text.
// Lines have no length limit.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes prompt without a newline and reads one line of input.
// The returned line has its line ending removed. An unterminated last line
// is returned as is; the read after it returns io.EOF.
func (c *Console) Prompt(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Println writes a line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
