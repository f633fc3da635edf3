package gitrepo

import (
	"testing"

	"github.com/m-mizutani/gt"
)

func TestFirstLine(t *testing.T) {
	gt.Equal(t, firstLine("summary\n\nbody"), "summary")
	gt.Equal(t, firstLine("summary only"), "summary only")
	gt.Equal(t, firstLine(""), "")
	gt.Equal(t, firstLine("trailing newline\n"), "trailing newline")
}

func TestSSHAgentAuthURL(t *testing.T) {
	// https URLs never get agent auth regardless of agent availability
	gt.Value(t, sshAgentAuth("https://github.com/acme/widgets.git")).Nil()
	gt.Value(t, sshAgentAuth("/srv/git/widgets.git")).Nil()
}
