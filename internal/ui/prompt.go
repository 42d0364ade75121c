package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line. It is shared by every question of one
// interactive session so buffered input is not lost between them.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the trimmed answer. io.EOF is returned only when
// the input ended before anything was typed.
func (p *Prompter) Ask(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s ", Info.Sprint(label))
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm accepts y/yes/s/si in any case.
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.Ask(question + " (s/n):")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}
