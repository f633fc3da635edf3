package model

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// BumpKind represents which component of a semantic version to increment
type BumpKind string

const (
	BumpNone  BumpKind = ""
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// ParseBumpKind maps a CLI argument to a BumpKind. An empty string means no
// bump was requested and is valid.
func ParseBumpKind(s string) (BumpKind, bool) {
	switch BumpKind(strings.ToLower(s)) {
	case BumpNone, BumpPatch, BumpMinor, BumpMajor:
		return BumpKind(strings.ToLower(s)), true
	default:
		return BumpNone, false
	}
}

// ParseVersion parses a tag name as a semantic version, stripping one leading
// "v" if present. Malformed names return false rather than an error: real
// repositories carry tags like "nightly-build" that must simply be skipped.
func ParseVersion(tagName string) (*semver.Version, bool) {
	raw := strings.TrimPrefix(tagName, "v")
	v, err := semver.StrictNewVersion(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Bump returns a new version with the requested component incremented and all
// lower-order components zeroed. Prerelease and metadata do not survive a bump.
// BumpNone returns the input unchanged.
func Bump(v *semver.Version, kind BumpKind) *semver.Version {
	switch kind {
	case BumpMajor:
		return semver.New(v.Major()+1, 0, 0, "", "")
	case BumpMinor:
		return semver.New(v.Major(), v.Minor()+1, 0, "", "")
	case BumpPatch:
		return semver.New(v.Major(), v.Minor(), v.Patch()+1, "", "")
	default:
		return v
	}
}

// VString renders a version in tag form, e.g. "v1.2.3"
func VString(v *semver.Version) string {
	return "v" + v.String()
}
