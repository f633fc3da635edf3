package interfaces

import (
	"context"

	"github.com/tagge/tagge/pkg/domain/model"
)

// RepositorySource defines the read operations the release flow needs from a
// local git repository, plus the remote refresh. All reads are synchronous;
// Fetch uses its own repository handle so it may run concurrently with reads.
type RepositorySource interface {
	// ListTagNames returns every tag name in the repository, in no particular order
	ListTagNames(ctx context.Context) ([]string, error)

	// PeelAnnotatedTag resolves a tag name to its annotated tag object.
	// Lightweight tags fail with types.ErrTagNotAnnotated.
	PeelAnnotatedTag(ctx context.Context, name string) (*model.TagRef, error)

	// Head returns the current HEAD commit and branch shorthand.
	// Fails with types.ErrMissingHead when no head is resolvable.
	Head(ctx context.Context) (*model.HeadRef, error)

	// CommitsAhead returns the commits reachable from HEAD but not from
	// excludeID, newest first, each commit at most once. Unreadable commits
	// are skipped rather than aborting the walk.
	CommitsAhead(ctx context.Context, excludeID string) ([]model.CommitRecord, error)

	// RemoteURL returns the first URL configured for the named remote.
	// Fails with types.ErrNoRemote when the remote does not exist.
	RemoteURL(ctx context.Context, remote string) (string, error)

	// Fetch refreshes tags and branches from the named remote using
	// ssh-agent credentials when the remote URL is an SSH one.
	Fetch(ctx context.Context, remote string) error
}
