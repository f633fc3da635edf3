package usecase_test

import (
	"context"
	"errors"

	"github.com/tagge/tagge/pkg/domain/model"
)

// mockSource is a hand-rolled RepositorySource with per-method hooks
type mockSource struct {
	listTagNamesFunc    func(ctx context.Context) ([]string, error)
	peelAnnotatedFunc   func(ctx context.Context, name string) (*model.TagRef, error)
	headFunc            func(ctx context.Context) (*model.HeadRef, error)
	commitsAheadFunc    func(ctx context.Context, excludeID string) ([]model.CommitRecord, error)
	remoteURLFunc       func(ctx context.Context, remote string) (string, error)
	fetchFunc           func(ctx context.Context, remote string) error
	fetchCalls          int
	peeledNames         []string
	commitsAheadExclude string
}

func (m *mockSource) ListTagNames(ctx context.Context) ([]string, error) {
	if m.listTagNamesFunc != nil {
		return m.listTagNamesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) PeelAnnotatedTag(ctx context.Context, name string) (*model.TagRef, error) {
	m.peeledNames = append(m.peeledNames, name)
	if m.peelAnnotatedFunc != nil {
		return m.peelAnnotatedFunc(ctx, name)
	}
	return nil, errors.New("mock not configured")
}

func (m *mockSource) Head(ctx context.Context) (*model.HeadRef, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx)
	}
	return &model.HeadRef{CommitID: "headhash", Branch: "main", IsBranch: true}, nil
}

func (m *mockSource) CommitsAhead(ctx context.Context, excludeID string) ([]model.CommitRecord, error) {
	m.commitsAheadExclude = excludeID
	if m.commitsAheadFunc != nil {
		return m.commitsAheadFunc(ctx, excludeID)
	}
	return nil, nil
}

func (m *mockSource) RemoteURL(ctx context.Context, remote string) (string, error) {
	if m.remoteURLFunc != nil {
		return m.remoteURLFunc(ctx, remote)
	}
	return "git@github.com:acme/widgets.git", nil
}

func (m *mockSource) Fetch(ctx context.Context, remote string) error {
	m.fetchCalls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, remote)
	}
	return nil
}

// mockGitHub is a hand-rolled GitHubClient
type mockGitHub struct {
	pullRequestsFunc func(ctx context.Context, owner, repo, sha string) ([]int, error)
}

func (m *mockGitHub) PullRequestsForCommit(ctx context.Context, owner, repo, sha string) ([]int, error) {
	if m.pullRequestsFunc != nil {
		return m.pullRequestsFunc(ctx, owner, repo, sha)
	}
	return nil, nil
}

// mockSigner records signed tag creation
type mockSigner struct {
	createFunc func(ctx context.Context, name, message string) error
	names      []string
	messages   []string
}

func (m *mockSigner) CreateSignedTag(ctx context.Context, name, message string) error {
	m.names = append(m.names, name)
	m.messages = append(m.messages, message)
	if m.createFunc != nil {
		return m.createFunc(ctx, name, message)
	}
	return nil
}

// mockConfirmer answers every prompt with a canned value
type mockConfirmer struct {
	answer  bool
	prompts []string
}

func (m *mockConfirmer) Confirm(prompt string) bool {
	m.prompts = append(m.prompts, prompt)
	return m.answer
}
