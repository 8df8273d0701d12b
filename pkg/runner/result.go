package runner

import (
	"time"

	"github.com/yaklabco/asciistamp/pkg/annotate"
	"github.com/yaklabco/asciistamp/pkg/diff"
)

// Result is the outcome of a run.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Language is the detected Linguist language name, possibly empty.
	Language string

	// Annotation holds the output text and insertion records.
	Annotation annotate.Result

	// Diff is set for dry runs that would insert at least one block.
	Diff *diff.Diff

	// Written is true when the target was rewritten.
	Written bool

	// BackupCreated is true when a sidecar backup was written during this run.
	BackupCreated bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Insertions returns the number of blocks inserted (or that would be, for a dry run).
func (r *Result) Insertions() int {
	if r == nil {
		return 0
	}
	return len(r.Annotation.Insertions)
}
