package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the operator a yes/no question. Production binds it to
// the terminal; tests script the answer.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

type stdioConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewStdioConfirmer returns a Confirmer reading one line from in. Only
// a case-insensitive "y" counts as assent; anything else, including
// EOF, declines.
func NewStdioConfirmer(in io.Reader, out io.Writer) Confirmer {
	return &stdioConfirmer{in: in, out: out}
}

func (c *stdioConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)

	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
