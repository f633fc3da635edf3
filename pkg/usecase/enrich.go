package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/types"
)

// prLookupLimit caps the concurrent GitHub requests. Release ranges are small,
// but an unbounded fan-out invites GitHub's secondary rate limits.
const prLookupLimit = 8

// PullRequestEnricher maps commit ids to the pull request that introduced
// them, using one API call per commit.
type PullRequestEnricher struct {
	client interfaces.GitHubClient
	limit  int
}

// NewPullRequestEnricher creates an enricher backed by the given client
func NewPullRequestEnricher(client interfaces.GitHubClient) *PullRequestEnricher {
	return &PullRequestEnricher{client: client, limit: prLookupLimit}
}

// Enrich looks up the pull requests containing each commit and returns a
// commit id → PR number mapping. Lookups run concurrently; a failed lookup
// degrades to "no PR found" for that commit and never affects the others.
// When the API reports several PRs for one commit, the first is kept.
func (e *PullRequestEnricher) Enrich(ctx context.Context, owner, repo string, commitIDs []string) (map[string]int, error) {
	if e.client == nil {
		return nil, goerr.Wrap(types.ErrMissingToken, "pull request enrichment requires a GitHub client")
	}

	logger := ctxlog.From(ctx)

	results := make(map[string]int, len(commitIDs))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(e.limit)
	for _, id := range commitIDs {
		g.Go(func() error {
			numbers, err := e.client.PullRequestsForCommit(ctx, owner, repo, id)
			if err != nil {
				logger.Warn("pull request lookup failed, treating as no PR",
					"commit", id, "error", err)
				return nil
			}
			if len(numbers) == 0 {
				return nil
			}
			mu.Lock()
			results[id] = numbers[0]
			mu.Unlock()
			return nil
		})
	}
	// Lookup goroutines never return errors; failures degrade per commit.
	_ = g.Wait()

	return results, nil
}
