package usecase

import (
	"fmt"
	"strings"

	"github.com/tagge/tagge/pkg/domain/model"
)

// NoNewCommits is emitted instead of an empty changelog so the tag message
// never carries an empty block.
const NoNewCommits = "No new commits since the last tag."

// LineOptions controls how a single changelog line is rendered
type LineOptions struct {
	IncludeSHA bool
	AnnotatePR bool
	PRNumbers  map[string]int // commit id → PR number; consulted only when AnnotatePR
}

// FormatCommitLine renders one commit as a changelog line. With AnnotatePR
// set, a commit absent from PRNumbers gets an explicit "(N/A)" marker to
// distinguish "looked up, none found" from "not looked up at all".
func FormatCommitLine(c model.CommitRecord, opts LineOptions) string {
	var b strings.Builder
	if opts.IncludeSHA {
		b.WriteString(c.ShortID())
		b.WriteByte(' ')
	}
	b.WriteString(c.Summary)
	if opts.AnnotatePR {
		if n, ok := opts.PRNumbers[c.ID]; ok {
			fmt.Fprintf(&b, " (#%d)", n)
		} else {
			b.WriteString(" (N/A)")
		}
	}
	return b.String()
}

// FormatChangelog renders formatted commit lines, newest first, as a
// changelog block
func FormatChangelog(lines []string) string {
	if len(lines) == 0 {
		return NoNewCommits
	}
	var b strings.Builder
	b.WriteString("Changelog:")
	for _, line := range lines {
		b.WriteString("\n - ")
		b.WriteString(line)
	}
	return b.String()
}

// ReleaseMessage builds the full annotated tag message for a release
func ReleaseMessage(tagName string, lines []string) string {
	return fmt.Sprintf("Release %s\n\n%s", tagName, FormatChangelog(lines))
}
