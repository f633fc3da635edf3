package gitrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/m-mizutani/gt"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/types"
	"github.com/tagge/tagge/pkg/infra/gitrepo"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sig(offset time.Duration) object.Signature {
	return object.Signature{
		Name:  "Tester",
		Email: "tester@example.com",
		When:  baseTime.Add(offset),
	}
}

// testRepo keeps the raw repository and its storage around so tests can
// create tags and corrupt objects behind the source's back.
type testRepo struct {
	source interfaces.RepositorySource
	repo   *git.Repository
	store  *memory.Storage
	wt     *git.Worktree
}

func initRepo(t *testing.T) *testRepo {
	t.Helper()

	store := memory.NewStorage()
	repo, err := git.Init(store, memfs.New())
	gt.NoError(t, err)

	wt, err := repo.Worktree()
	gt.NoError(t, err)

	return &testRepo{
		source: gitrepo.FromRepository(repo, ""),
		repo:   repo,
		store:  store,
		wt:     wt,
	}
}

// commit writes a file and commits it. Explicit parents override HEAD so
// tests can shape merge topologies without running merges.
func commit(t *testing.T, tr *testRepo, file, message string, offset time.Duration, parents ...plumbing.Hash) plumbing.Hash {
	t.Helper()

	gt.NoError(t, util.WriteFile(tr.wt.Filesystem, file, []byte(message), 0644))
	_, err := tr.wt.Add(file)
	gt.NoError(t, err)

	hash, err := tr.wt.Commit(message, &git.CommitOptions{
		Author:    ptr(sig(offset)),
		Committer: ptr(sig(offset)),
		Parents:   parents,
	})
	gt.NoError(t, err)
	return hash
}

func ptr[T any](v T) *T { return &v }

func annotatedTag(t *testing.T, tr *testRepo, name string, target plumbing.Hash) {
	t.Helper()
	_, err := tr.repo.CreateTag(name, target, &git.CreateTagOptions{
		Tagger:  ptr(sig(0)),
		Message: "release " + name,
	})
	gt.NoError(t, err)
}

func lightweightTag(t *testing.T, tr *testRepo, name string, target plumbing.Hash) {
	t.Helper()
	_, err := tr.repo.CreateTag(name, target, nil)
	gt.NoError(t, err)
}

// dropCommit removes a commit object from the backing storage, leaving
// references to it dangling.
func dropCommit(t *testing.T, tr *testRepo, hash plumbing.Hash) {
	t.Helper()
	delete(tr.store.Commits, hash)
	delete(tr.store.Objects, hash)
}

func TestListTagNames(t *testing.T) {
	ctx := context.Background()
	tr := initRepo(t)

	a := commit(t, tr, "a.txt", "first", 0)
	annotatedTag(t, tr, "v1.0.0", a)
	lightweightTag(t, tr, "nightly-build", a)

	names, err := tr.source.ListTagNames(ctx)
	gt.NoError(t, err)
	gt.Equal(t, len(names), 2)

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	gt.True(t, found["v1.0.0"])
	gt.True(t, found["nightly-build"])
}

func TestPeelAnnotatedTag(t *testing.T) {
	ctx := context.Background()
	tr := initRepo(t)

	a := commit(t, tr, "a.txt", "first", 0)
	annotatedTag(t, tr, "v1.0.0", a)
	lightweightTag(t, tr, "v2.0.0", a)

	t.Run("annotated tag peels to its target commit", func(t *testing.T) {
		tag, err := tr.source.PeelAnnotatedTag(ctx, "v1.0.0")
		gt.NoError(t, err)
		gt.Equal(t, tag.Name, "v1.0.0")
		gt.Equal(t, tag.Target, a.String())
		gt.True(t, tag.ID != tag.Target)
	})

	t.Run("lightweight tag cannot be peeled", func(t *testing.T) {
		_, err := tr.source.PeelAnnotatedTag(ctx, "v2.0.0")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTagNotAnnotated))
	})

	t.Run("unknown tag fails", func(t *testing.T) {
		_, err := tr.source.PeelAnnotatedTag(ctx, "v3.0.0")
		gt.Error(t, err)
	})
}

func TestHead(t *testing.T) {
	ctx := context.Background()

	t.Run("returns branch and commit", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "first", 0)

		head, err := tr.source.Head(ctx)
		gt.NoError(t, err)
		gt.Equal(t, head.CommitID, a.String())
		gt.Equal(t, head.Branch, "master")
		gt.True(t, head.IsBranch)
	})

	t.Run("repository without commits has no head", func(t *testing.T) {
		tr := initRepo(t)

		_, err := tr.source.Head(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMissingHead))
	})
}

func TestCommitsAhead(t *testing.T) {
	ctx := context.Background()

	t.Run("linear history, newest first", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "first change", 0)
		commit(t, tr, "b.txt", "second change\n\nwith a body", time.Minute)
		commit(t, tr, "c.txt", "third change", 2*time.Minute)

		commits, err := tr.source.CommitsAhead(ctx, a.String())
		gt.NoError(t, err)
		gt.Equal(t, len(commits), 2)
		gt.Equal(t, commits[0].Summary, "third change")
		gt.Equal(t, commits[1].Summary, "second change")
	})

	t.Run("diamond history visits each commit once", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "base", 0)
		b := commit(t, tr, "b.txt", "left side", time.Minute)
		c := commit(t, tr, "c.txt", "right side", 2*time.Minute, a)
		commit(t, tr, "m.txt", "merge both sides", 3*time.Minute, b, c)

		commits, err := tr.source.CommitsAhead(ctx, a.String())
		gt.NoError(t, err)
		gt.Equal(t, len(commits), 3)
		gt.Equal(t, commits[0].Summary, "merge both sides")
		gt.Equal(t, commits[1].Summary, "right side")
		gt.Equal(t, commits[2].Summary, "left side")

		seen := map[string]bool{}
		for _, c := range commits {
			gt.True(t, !seen[c.ID])
			seen[c.ID] = true
			gt.True(t, c.ID != a.String())
		}
	})

	t.Run("head at the tag means empty range", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "only commit", 0)

		commits, err := tr.source.CommitsAhead(ctx, a.String())
		gt.NoError(t, err)
		gt.Equal(t, len(commits), 0)
	})

	t.Run("unreadable commit is skipped, not fatal", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "base", 0)
		b := commit(t, tr, "b.txt", "middle", time.Minute)
		c := commit(t, tr, "c.txt", "tip", 2*time.Minute)

		dropCommit(t, tr, b)

		commits, err := tr.source.CommitsAhead(ctx, a.String())
		gt.NoError(t, err)
		gt.Equal(t, len(commits), 1)
		gt.Equal(t, commits[0].ID, c.String())
		gt.Equal(t, commits[0].Summary, "tip")
	})

	t.Run("unreadable excluded commit does not abort the walk", func(t *testing.T) {
		tr := initRepo(t)
		a := commit(t, tr, "a.txt", "base", 0)
		b := commit(t, tr, "b.txt", "middle", time.Minute)
		c := commit(t, tr, "c.txt", "tip", 2*time.Minute)

		dropCommit(t, tr, a)

		commits, err := tr.source.CommitsAhead(ctx, a.String())
		gt.NoError(t, err)
		gt.Equal(t, len(commits), 2)
		gt.Equal(t, commits[0].ID, c.String())
		gt.Equal(t, commits[1].ID, b.String())
	})

	t.Run("no head fails", func(t *testing.T) {
		tr := initRepo(t)

		_, err := tr.source.CommitsAhead(ctx, plumbing.ZeroHash.String())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrMissingHead))
	})
}

func TestRemoteURL(t *testing.T) {
	ctx := context.Background()
	tr := initRepo(t)

	t.Run("missing remote", func(t *testing.T) {
		_, err := tr.source.RemoteURL(ctx, "origin")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNoRemote))
	})
}
