package usecase

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/tagge/tagge/pkg/domain/interfaces"
	"github.com/tagge/tagge/pkg/domain/model"
)

// ResolveLatestTag scans every tag name in the repository, picks the one with
// the strictly greatest semantic version, and peels it to its annotated tag
// object. Names that do not parse as versions are skipped silently. Returns
// nil (not an error) when no tag name parses: a repository without version
// tags is an expected state, not a failure.
//
// Ties keep the first candidate encountered. A winner that turns out to be a
// lightweight tag fails resolution outright; there is no fallback to the
// next-highest version.
func ResolveLatestTag(ctx context.Context, source interfaces.RepositorySource) (*model.TagRef, error) {
	names, err := source.ListTagNames(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan tag names")
	}

	var bestName string
	var bestVer *semver.Version
	for _, name := range names {
		v, ok := model.ParseVersion(name)
		if !ok {
			continue
		}
		if bestVer == nil || v.GreaterThan(bestVer) {
			bestVer = v
			bestName = name
		}
	}
	if bestVer == nil {
		return nil, nil
	}

	ctxlog.From(ctx).Debug("version scan picked tag", "name", bestName, "version", bestVer.String())

	tag, err := source.PeelAnnotatedTag(ctx, bestName)
	if err != nil {
		return nil, err
	}
	tag.Version = bestVer
	return tag, nil
}
