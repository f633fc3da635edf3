package github

import (
	"context"
	"net/url"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/types"
)

type client struct {
	githubClient *github.Client
}

// Option configures the GitHub client
type Option func(*github.Client) error

// WithBaseURL points the client at a GitHub Enterprise or test endpoint
func WithBaseURL(rawURL string) Option {
	return func(c *github.Client) error {
		u, err := url.Parse(rawURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", rawURL))
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a GitHub client authenticated with a bearer token. The
// token is passed in explicitly; this package never reads the environment.
func NewClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrMissingToken, "cannot create GitHub client")
	}

	githubClient := github.NewClient(nil).WithAuthToken(token)
	for _, opt := range opts {
		if err := opt(githubClient); err != nil {
			return nil, err
		}
	}

	return &client{githubClient: githubClient}, nil
}

// PullRequestsForCommit lists the pull requests that contain the given commit
func (c *client) PullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]int, error) {
	prs, _, err := c.githubClient.PullRequests.ListPullRequestsWithCommit(ctx, owner, repo, sha, &github.ListOptions{
		PerPage: 30,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests for commit",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("sha", sha),
		)
	}

	numbers := make([]int, 0, len(prs))
	for _, pr := range prs {
		numbers = append(numbers, pr.GetNumber())
	}
	return numbers, nil
}
