package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/model"
	"github.com/tagge/tagge/pkg/utils/async"
)

var defaultReleaseBranches = []string{"main", "master"}

type releaseUseCase struct {
	source  interfaces.RepositorySource
	github  interfaces.GitHubClient
	signer  interfaces.TagSigner
	confirm interfaces.Confirmer
	out     io.Writer
}

// Option configures the release use case
type Option func(*releaseUseCase)

// WithGitHubClient injects the client used for pull request enrichment
func WithGitHubClient(client interfaces.GitHubClient) Option {
	return func(uc *releaseUseCase) { uc.github = client }
}

// WithTagSigner injects the signed-tag capability
func WithTagSigner(signer interfaces.TagSigner) Option {
	return func(uc *releaseUseCase) { uc.signer = signer }
}

// WithConfirmer injects the interactive yes/no prompt. Without one, runs on a
// non-release branch that would create a tag are aborted instead of asked.
func WithConfirmer(confirm interfaces.Confirmer) Option {
	return func(uc *releaseUseCase) { uc.confirm = confirm }
}

// WithOutput redirects the user-facing summary output
func WithOutput(w io.Writer) Option {
	return func(uc *releaseUseCase) { uc.out = w }
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(source interfaces.RepositorySource, opts ...Option) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		source: source,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run drives one release invocation: branch check → (refresh) → tag
// resolution → commit walk → (PR enrichment, joined with the refresh) →
// formatting → (signed tag creation).
func (uc *releaseUseCase) Run(ctx context.Context, req *model.ReleaseRequest) error {
	logger := ctxlog.From(ctx)

	head, err := uc.source.Head(ctx)
	if err != nil {
		return err
	}

	if ok := uc.checkBranch(head, req); !ok {
		fmt.Fprintln(uc.out, "Aborted!")
		return nil
	}

	// The refresh mutates the local tag namespace, so it is awaited before
	// the tag scan unless PR enrichment will run; then it runs on its own
	// repository handle and is joined before formatting. Exits taken before
	// that join still wait for it so Run never leaves a fetch in flight.
	var refresh *async.Task[struct{}]
	defer func() {
		if refresh == nil {
			return
		}
		if _, err := refresh.Wait(ctx); err != nil {
			logger.Warn("remote refresh failed", "error", err)
		}
	}()
	if !req.NoFetch {
		if req.UsePR {
			refresh = async.Run(ctx, func(ctx context.Context) (struct{}, error) {
				return struct{}{}, uc.source.Fetch(ctx, req.Remote)
			})
		} else if err := uc.source.Fetch(ctx, req.Remote); err != nil {
			return err
		}
	}

	tag, err := ResolveLatestTag(ctx, uc.source)
	if err != nil {
		return err
	}
	if tag == nil {
		fmt.Fprintln(uc.out, "No tags found! Please create the first tag manually!")
		return nil
	}
	logger.Debug("resolved latest tag", "name", tag.Name, "target", tag.Target)

	commits, err := uc.source.CommitsAhead(ctx, tag.Target)
	if err != nil {
		return err
	}

	var prNumbers map[string]int
	if req.UsePR {
		prNumbers, err = uc.enrich(ctx, req, commits)
		if err != nil {
			return err
		}
	}

	if refresh != nil {
		_, err := refresh.Wait(ctx)
		refresh = nil
		if err != nil {
			return goerr.Wrap(err, "remote refresh failed")
		}
	}

	fmt.Fprintf(uc.out, "Latest tag:\n  SHA: %s\n  Version: %s\n\n", tag.ID, model.VString(tag.Version))

	lineOpts := LineOptions{
		IncludeSHA: req.UseSHA,
		AnnotatePR: req.UsePR,
		PRNumbers:  prNumbers,
	}
	lines := make([]string, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, FormatCommitLine(c, lineOpts))
	}

	tagName := uc.targetTagName(tag, req)
	if tagName == "" {
		fmt.Fprintln(uc.out, "Commits:")
		for _, line := range lines {
			fmt.Fprintf(uc.out, "  %s\n", line)
		}
		return nil
	}

	message := ReleaseMessage(tagName, lines)

	if req.DryRun {
		fmt.Fprintf(uc.out, "New tag: %s\n\n", tagName)
		fmt.Fprintf(uc.out, "Command:\ngit tag -a %s -s -m %q\n", tagName, message)
		return nil
	}

	if uc.signer == nil {
		return goerr.New("no tag signer configured")
	}
	if err := uc.signer.CreateSignedTag(ctx, tagName, message); err != nil {
		return err
	}

	created, err := uc.source.PeelAnnotatedTag(ctx, tagName)
	if err != nil {
		return goerr.Wrap(err, "tag was created but cannot be read back", goerr.V("tag", tagName))
	}

	fmt.Fprintf(uc.out, "Created tag:\n  SHA: %s\n  Name: %s\n\n%s\n", created.ID, tagName, FormatChangelog(lines))
	return nil
}

// checkBranch warns when HEAD is not a release branch and, when the run would
// create a tag, asks for confirmation. Returns false to abort the run.
func (uc *releaseUseCase) checkBranch(head *model.HeadRef, req *model.ReleaseRequest) bool {
	branches := append(slices.Clone(defaultReleaseBranches), req.ReleaseBranches...)
	if !head.IsBranch || slices.Contains(branches, head.Branch) {
		return true
	}

	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(uc.out, "Note: You are on branch '%s', not a release branch!\n\n", head.Branch)

	if req.DryRun || !req.WantsTag() {
		return true
	}
	if uc.confirm == nil {
		return false
	}
	return uc.confirm.Confirm("Are you sure you want to create a tag on this branch?")
}

// enrich resolves the GitHub repository and maps the commit range to PR numbers
func (uc *releaseUseCase) enrich(ctx context.Context, req *model.ReleaseRequest, commits []model.CommitRecord) (map[string]int, error) {
	owner, repo := req.Owner, req.Repo
	if owner == "" || repo == "" {
		remoteURL, err := uc.source.RemoteURL(ctx, req.Remote)
		if err != nil {
			return nil, err
		}
		var ok bool
		owner, repo, ok = model.ParseGitHubRemote(remoteURL)
		if !ok {
			return nil, goerr.New("remote URL is not a GitHub repository", goerr.V("url", remoteURL))
		}
	}

	ids := make([]string, 0, len(commits))
	for _, c := range commits {
		ids = append(ids, c.ID)
	}

	enricher := NewPullRequestEnricher(uc.github)
	return enricher.Enrich(ctx, owner, repo, ids)
}

// targetTagName computes the tag to create, or "" when none was requested
func (uc *releaseUseCase) targetTagName(latest *model.TagRef, req *model.ReleaseRequest) string {
	var name string
	switch {
	case req.TagOverride != "":
		name = req.TagOverride
	case req.Bump != model.BumpNone:
		name = model.VString(model.Bump(latest.Version, req.Bump))
	default:
		return ""
	}
	return name + req.Suffix
}
