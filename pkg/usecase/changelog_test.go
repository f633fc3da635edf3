package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/tagge/tagge/pkg/domain/model"
	"github.com/tagge/tagge/pkg/usecase"
)

func TestFormatCommitLine(t *testing.T) {
	commit := model.CommitRecord{
		ID:      "0123456789abcdef0123456789abcdef01234567",
		Summary: "Fix tag resolution for mixed prefixes",
	}

	t.Run("summary only", func(t *testing.T) {
		line := usecase.FormatCommitLine(commit, usecase.LineOptions{})
		gt.Equal(t, line, "Fix tag resolution for mixed prefixes")
	})

	t.Run("with sha prefix", func(t *testing.T) {
		line := usecase.FormatCommitLine(commit, usecase.LineOptions{IncludeSHA: true})
		gt.Equal(t, line, "0123456 Fix tag resolution for mixed prefixes")
	})

	t.Run("pr annotation found", func(t *testing.T) {
		line := usecase.FormatCommitLine(commit, usecase.LineOptions{
			AnnotatePR: true,
			PRNumbers:  map[string]int{commit.ID: 42},
		})
		gt.Equal(t, line, "Fix tag resolution for mixed prefixes (#42)")
	})

	t.Run("pr annotation requested but absent", func(t *testing.T) {
		line := usecase.FormatCommitLine(commit, usecase.LineOptions{AnnotatePR: true})
		gt.Equal(t, line, "Fix tag resolution for mixed prefixes (N/A)")
	})

	t.Run("empty summary still renders", func(t *testing.T) {
		line := usecase.FormatCommitLine(model.CommitRecord{ID: commit.ID}, usecase.LineOptions{IncludeSHA: true})
		gt.Equal(t, line, "0123456 ")
	})
}

func TestFormatChangelog(t *testing.T) {
	t.Run("empty input yields the sentinel, never empty", func(t *testing.T) {
		out := usecase.FormatChangelog(nil)
		gt.Equal(t, out, usecase.NoNewCommits)
		gt.True(t, out != "")
	})

	t.Run("lines newest first with dash prefix", func(t *testing.T) {
		out := usecase.FormatChangelog([]string{"newest change", "older change"})
		gt.Equal(t, out, "Changelog:\n - newest change\n - older change")
	})
}

func TestReleaseMessage(t *testing.T) {
	msg := usecase.ReleaseMessage("v1.4.0", []string{"add walker"})
	gt.True(t, strings.HasPrefix(msg, "Release v1.4.0\n\n"))
	gt.String(t, msg).Contains("Changelog:\n - add walker")

	empty := usecase.ReleaseMessage("v1.4.0", nil)
	gt.String(t, empty).Contains(usecase.NoNewCommits)
}
