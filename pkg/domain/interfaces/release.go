package interfaces

import (
	"context"

	"github.com/tagge/tagge/pkg/domain/model"
)

// ReleaseUseCase drives one release invocation end to end
type ReleaseUseCase interface {
	// Run resolves the latest tag, walks the commit range, optionally
	// enriches it with pull request numbers, and creates the requested tag
	Run(ctx context.Context, req *model.ReleaseRequest) error
}

// TagSigner produces a cryptographically signed annotated tag on HEAD,
// reachable afterward as refs/tags/<name>. go-git cannot sign tags, so the
// concrete implementation delegates to the git binary.
type TagSigner interface {
	CreateSignedTag(ctx context.Context, name, message string) error
}

// Confirmer asks the user a yes/no question. Empty input means no.
type Confirmer interface {
	Confirm(prompt string) bool
}
