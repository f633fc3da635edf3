package interfaces

import "context"

// GitHubClient defines operations for interacting with the GitHub API
type GitHubClient interface {
	// PullRequestsForCommit lists the numbers of pull requests that contain
	// the given commit, in the order the API returns them
	PullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]int, error)
}
