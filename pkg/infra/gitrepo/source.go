package gitrepo

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	gitssh "github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/model"
	"github.com/tagge/tagge/pkg/domain/types"
)

// Source reads a local git repository through go-git. The embedded handle is
// used for all synchronous reads; Fetch opens a second handle on the same path
// so a concurrent refresh never shares mutable state with the read path.
type Source struct {
	path string
	repo *git.Repository
}

// Open opens the repository at path
func Open(path string) (interfaces.RepositorySource, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryNotFound, "failed to open repository",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	return &Source{path: path, repo: repo}, nil
}

// FromRepository wraps an already-open repository, e.g. one backed by
// in-memory storage. Fetch reopens the repository by path, so sources built
// with an empty path cannot fetch.
func FromRepository(repo *git.Repository, path string) interfaces.RepositorySource {
	return &Source{path: path, repo: repo}
}

// ListTagNames returns every tag name in the repository
func (s *Source) ListTagNames(ctx context.Context) ([]string, error) {
	iter, err := s.repo.Tags()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags")
	}
	defer iter.Close()

	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to iterate tags")
	}
	return names, nil
}

// PeelAnnotatedTag resolves a tag name to its annotated tag object.
// Lightweight tags point directly at a commit and fail with ErrTagNotAnnotated.
func (s *Source) PeelAnnotatedTag(ctx context.Context, name string) (*model.TagRef, error) {
	ref, err := s.repo.Reference(plumbing.NewTagReferenceName(name), true)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve tag reference", goerr.V("tag", name))
	}

	tagObj, err := s.repo.TagObject(ref.Hash())
	if err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return nil, goerr.Wrap(types.ErrTagNotAnnotated, "cannot peel lightweight tag", goerr.V("tag", name))
		}
		return nil, goerr.Wrap(err, "failed to read tag object", goerr.V("tag", name))
	}

	return &model.TagRef{
		Name:   name,
		ID:     tagObj.Hash.String(),
		Target: tagObj.Target.String(),
	}, nil
}

// Head returns the current HEAD commit id and branch shorthand
func (s *Source) Head(ctx context.Context) (*model.HeadRef, error) {
	ref, err := s.repo.Head()
	if err != nil {
		return nil, goerr.Wrap(types.ErrMissingHead, "repository has no resolvable HEAD",
			goerr.V("cause", err.Error()),
		)
	}
	return &model.HeadRef{
		CommitID: ref.Hash().String(),
		Branch:   ref.Name().Short(),
		IsBranch: ref.Name().IsBranch(),
	}, nil
}

// CommitsAhead returns the commits reachable from HEAD but not from excludeID,
// newest first. Each commit appears once even when reachable through multiple
// parent paths; commits that cannot be read are skipped.
func (s *Source) CommitsAhead(ctx context.Context, excludeID string) ([]model.CommitRecord, error) {
	logger := ctxlog.From(ctx)

	head, err := s.Head(ctx)
	if err != nil {
		return nil, err
	}

	excluded := s.ancestrySet(ctx, plumbing.NewHash(excludeID))

	var commits []*object.Commit
	seen := map[plumbing.Hash]bool{}
	queue := []plumbing.Hash{plumbing.NewHash(head.CommitID)}

	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]
		if seen[hash] || excluded[hash] {
			continue
		}
		seen[hash] = true

		commit, err := s.repo.CommitObject(hash)
		if err != nil {
			logger.Warn("skipping unreadable commit", "hash", hash.String(), "error", err)
			continue
		}
		commits = append(commits, commit)
		queue = append(queue, commit.ParentHashes...)
	}

	// Traversal order is breadth-first from HEAD; pin the newest-first
	// guarantee on committer time, keeping traversal order for equal times.
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Committer.When.After(commits[j].Committer.When)
	})

	records := make([]model.CommitRecord, 0, len(commits))
	for _, c := range commits {
		records = append(records, model.CommitRecord{
			ID:      c.Hash.String(),
			Summary: firstLine(c.Message),
		})
	}
	return records, nil
}

// ancestrySet collects the commit and all its ancestors. Unreadable commits
// end the path they are on but do not abort the walk.
func (s *Source) ancestrySet(ctx context.Context, start plumbing.Hash) map[plumbing.Hash]bool {
	logger := ctxlog.From(ctx)

	set := map[plumbing.Hash]bool{}
	queue := []plumbing.Hash{start}
	for len(queue) > 0 {
		hash := queue[0]
		queue = queue[1:]
		if set[hash] {
			continue
		}
		set[hash] = true

		commit, err := s.repo.CommitObject(hash)
		if err != nil {
			logger.Debug("unreadable commit in excluded ancestry", "hash", hash.String(), "error", err)
			continue
		}
		queue = append(queue, commit.ParentHashes...)
	}
	return set
}

// RemoteURL returns the first URL configured for the named remote
func (s *Source) RemoteURL(ctx context.Context, remote string) (string, error) {
	rem, err := s.repo.Remote(remote)
	if err != nil {
		return "", goerr.Wrap(types.ErrNoRemote, "remote lookup failed",
			goerr.V("remote", remote),
			goerr.V("cause", err.Error()),
		)
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", goerr.Wrap(types.ErrNoRemote, "remote has no URL", goerr.V("remote", remote))
	}
	return urls[0], nil
}

// Fetch refreshes tags and branches from the named remote. It opens its own
// repository handle so it can run concurrently with reads on this Source.
func (s *Source) Fetch(ctx context.Context, remote string) error {
	logger := ctxlog.From(ctx)

	repo, err := git.PlainOpen(s.path)
	if err != nil {
		return goerr.Wrap(types.ErrRepositoryNotFound, "failed to reopen repository for fetch",
			goerr.V("path", s.path),
		)
	}

	rem, err := repo.Remote(remote)
	if err != nil {
		return goerr.Wrap(types.ErrNoRemote, "cannot fetch", goerr.V("remote", remote))
	}

	opts := &git.FetchOptions{
		RemoteName: remote,
		RefSpecs: []gitconfig.RefSpec{
			gitconfig.RefSpec("+refs/tags/*:refs/tags/*"),
			gitconfig.RefSpec("+refs/heads/*:refs/remotes/" + remote + "/*"),
		},
		Tags: git.AllTags,
	}
	if urls := rem.Config().URLs; len(urls) > 0 {
		if auth := sshAgentAuth(urls[0]); auth != nil {
			opts.Auth = auth
		}
	}

	logger.Debug("fetching tags and branches", "remote", remote)
	if err := repo.FetchContext(ctx, opts); err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		return goerr.Wrap(err, "fetch failed", goerr.V("remote", remote))
	}
	return nil
}

// sshAgentAuth builds ssh-agent credentials for SSH remote URLs. Non-SSH URLs
// and agent setup failures fall back to no explicit auth.
func sshAgentAuth(url string) *gitssh.PublicKeysCallback {
	user := ""
	switch {
	case strings.HasPrefix(url, "ssh://"):
		rest := strings.TrimPrefix(url, "ssh://")
		if u, _, found := strings.Cut(rest, "@"); found {
			user = u
		}
	case strings.Contains(url, "@") && !strings.Contains(url, "://"):
		user, _, _ = strings.Cut(url, "@")
	default:
		return nil
	}
	if user == "" {
		user = "git"
	}

	auth, err := gitssh.NewSSHAgentAuth(user)
	if err != nil {
		return nil
	}
	return auth
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
