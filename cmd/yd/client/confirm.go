package client

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirmer asks on out and reads the answer from in
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer

	// AssumeYes skips the question (--yes)
	AssumeYes bool
}

// NewPromptConfirmer creates a Confirmer reading answers from in
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements Confirmer, only "y" or "yes" (any case) confirms
func (p *PromptConfirmer) Confirm(prompt string) bool {
	if p.AssumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
