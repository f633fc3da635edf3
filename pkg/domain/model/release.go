package model

import "github.com/Masterminds/semver/v3"

// TagRef is a repository tag that parsed as a semantic version and was peeled
// to its annotated tag object.
type TagRef struct {
	Name    string          // tag name as it appears under refs/tags
	ID      string          // hash of the annotated tag object
	Target  string          // hash of the commit the tag points at
	Version *semver.Version // parsed from the tag name
}

// HeadRef describes the current HEAD of the repository
type HeadRef struct {
	CommitID string
	Branch   string // shorthand name, empty when detached
	IsBranch bool
}

// CommitRecord is one commit in the release range. Read-only once produced.
type CommitRecord struct {
	ID      string // full content hash
	Summary string // first line of the message, possibly empty
}

// ShortID returns the first 7 characters of the commit hash for display
func (c CommitRecord) ShortID() string {
	if len(c.ID) < 7 {
		return c.ID
	}
	return c.ID[:7]
}

// ReleaseRequest carries everything one release invocation needs. It is built
// fresh per run from flags and the optional repository config file, and is
// never persisted.
type ReleaseRequest struct {
	Bump        BumpKind // BumpNone when only inspecting
	TagOverride string   // explicit tag name, takes precedence over Bump
	Suffix      string   // appended to the computed tag name

	UseSHA  bool // prefix changelog lines with abbreviated commit hashes
	UsePR   bool // annotate changelog lines with pull request numbers
	DryRun  bool // print the tag command instead of creating the tag
	NoFetch bool // skip the remote tag/branch refresh

	Remote string // remote name for fetch and owner/repo detection

	// Owner/Repo override the GitHub repository detected from the remote URL
	Owner string
	Repo  string

	// ReleaseBranches are branch names that skip the confirmation prompt,
	// in addition to main and master
	ReleaseBranches []string
}

// WantsTag reports whether this request would create a tag when not a dry run
func (r *ReleaseRequest) WantsTag() bool {
	return r.Bump != BumpNone || r.TagOverride != ""
}
