package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the release flow. Call sites wrap these with goerr.Wrap
// so errors.Is keeps working through the chain.
var (
	// ErrRepositoryNotFound means the given path does not open as a git repository
	ErrRepositoryNotFound = goerr.New("repository not found")

	// ErrNoRemote means a fetch or remote lookup was requested but the remote is not configured
	ErrNoRemote = goerr.New("remote not configured")

	// ErrMissingHead means the repository has no resolvable branch head
	ErrMissingHead = goerr.New("failed to resolve HEAD")

	// ErrTagNotAnnotated means the tag that won the version scan is a lightweight
	// tag and cannot be peeled to a tag object
	ErrTagNotAnnotated = goerr.New("tag is not annotated")

	// ErrMissingToken means pull request enrichment was requested without a GitHub token
	ErrMissingToken = goerr.New("GitHub token is required")

	// ErrSigningFailed means the external tag signer returned non-success
	ErrSigningFailed = goerr.New("tag signing failed")
)
