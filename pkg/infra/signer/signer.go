package signer

import (
	"context"
	"os/exec"

	"github.com/m-mizutani/goerr/v2"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/types"
)

// GitCLI signs tags by invoking the git binary. go-git has no signed-tag
// support, and delegating to git reuses the user's configured signing key.
type GitCLI struct {
	repoPath string
}

// NewGitCLI creates a signer operating on the repository at repoPath
func NewGitCLI(repoPath string) interfaces.TagSigner {
	return &GitCLI{repoPath: repoPath}
}

// CreateSignedTag creates a signed annotated tag named name on HEAD
func (s *GitCLI) CreateSignedTag(ctx context.Context, name, message string) error {
	cmd := exec.CommandContext(ctx, "git", "-C", s.repoPath, "tag", "-a", name, "-s", "-m", message)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return goerr.Wrap(types.ErrSigningFailed, "git tag -s returned non-success",
			goerr.V("tag", name),
			goerr.V("output", string(out)),
		)
	}
	return nil
}
