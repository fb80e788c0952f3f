package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// LinePrompter asks questions one line at a time. Secrets are read without
// echo when In is a terminal.
type LinePrompter struct {
	in  io.Reader
	r   *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, r: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Secret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if f, ok := p.in.(fder); ok && IsTerminal(p.in) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p.readLine()
}

// Line asks for a plain value. current is already part of label for this prompter.
func (p *LinePrompter) Line(label, current string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: end of input", ErrAborted)
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
