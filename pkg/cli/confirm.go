package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tagge/tagge/pkg/domain/interfaces"
)

// stdinConfirmer asks yes/no questions on the terminal. Empty input and
// anything starting a "no" answer mean no; unrecognized input re-asks.
type stdinConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newConfirmer(in io.Reader, out io.Writer) interfaces.Confirmer {
	return &stdinConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *stdinConfirmer) Confirm(prompt string) bool {
	for {
		fmt.Fprintf(c.out, "%s (y/N): ", prompt)

		line, err := c.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "", "n", "no":
			return false
		case "y", "yes":
			return true
		}
		if err != nil {
			// No more input to read; default answer is no.
			return false
		}
	}
}
