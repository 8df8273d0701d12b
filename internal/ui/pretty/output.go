package pretty

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/asciistamp/pkg/diff"
	"github.com/yaklabco/asciistamp/pkg/fsutil"
	"github.com/yaklabco/asciistamp/pkg/runner"
)

// Confirmation returns the line printed after a successful rewrite.
func (s *Styles) Confirmation(path string) string {
	return s.Success.Render("✅ Added ASCII art comments to "+filepath.Base(path)) + "\n"
}

// FormatResult returns the console output for a finished run.
func (s *Styles) FormatResult(result *runner.Result, width int) string {
	if result.Diff != nil {
		return s.FormatDiff(result.Diff) + s.rule(width) + s.dryRunSummary(result)
	}

	if !result.Written {
		return s.Dim.Render(fmt.Sprintf("No insertion point in %s (%d code lines, %d suppressed)",
			filepath.Base(result.Path), result.Annotation.CodeLines, result.Annotation.Suppressed)) + "\n"
	}

	msg := s.Confirmation(result.Path)
	if result.BackupCreated {
		msg += s.Dim.Render("backup: "+fsutil.BackupPath(result.Path)) + "\n"
	}
	return msg
}

func (s *Styles) dryRunSummary(result *runner.Result) string {
	n := result.Insertions()
	word := "blocks"
	if n == 1 {
		word = "block"
	}
	return s.Warning.Render(fmt.Sprintf("dry run: %d %s would be inserted into %s", n, word, filepath.Base(result.Path))) + "\n"
}

func (s *Styles) rule(width int) string {
	return s.Dim.Render(strings.Repeat("─", min(width, defaultWidth))) + "\n"
}

// FormatDiff renders d as a unified diff. Without color it is the plain
// diff.FullString form.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}
	if !s.color {
		return d.FullString()
	}

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render(d.GitHeader()))
	builder.WriteByte('\n')
	path := strings.TrimPrefix(d.Path, "/")
	builder.WriteString(s.DiffHeader.Render("--- a/" + path))
	builder.WriteByte('\n')
	builder.WriteString(s.DiffHeader.Render("+++ b/" + path))
	builder.WriteByte('\n')

	for _, hunk := range d.Hunks {
		builder.WriteString(s.DiffHunk.Render(hunk.Header()))
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			switch line.Kind {
			case diff.LineAdd:
				builder.WriteString(s.DiffAdd.Render("+" + line.Content))
			default:
				builder.WriteString(s.DiffContext.Render(" " + line.Content))
			}
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
