// Package diff renders the insertions made by the annotator as a unified diff.
//
// The annotator only ever adds lines, so hunks are built directly from the
// recorded insertion points instead of computing a longest common
// subsequence.
package diff

import (
	"fmt"
	"strings"

	"github.com/yaklabco/asciistamp/pkg/annotate"
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line added by the annotator.
	LineAdd
)

// Line is a single line in a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is a contiguous group of changes with surrounding context.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of original lines in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the output.
	ModifiedStart int

	// ModifiedCount is the number of output lines in this hunk.
	ModifiedCount int

	Lines []Line
}

// Diff is a unified diff between a target and its annotated output.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int
}

// FromInsertions builds the diff of original against the annotation result.
// Returns nil when nothing was inserted.
func FromInsertions(path, original string, result annotate.Result) *Diff {
	if !result.Changed() {
		return nil
	}

	ops := buildOps(original, result.Insertions)
	hunks := groupIntoHunks(ops)

	d := &Diff{Path: path, Hunks: hunks}
	for _, op := range ops {
		if op.kind == LineAdd {
			d.Additions++
		}
	}

	return d
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case LineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// Header returns the "@@ -a,b +c,d @@" line for the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

type op struct {
	kind    LineKind
	content string
}

// insertedLines are the output lines produced by one insertion: the blank
// separator followed by the block.
func insertedLines() []string {
	return append([]string{""}, strings.Split(annotate.Block, "\n")...)
}

func buildOps(original string, insertions []annotate.Insertion) []op {
	lines := strings.Split(original, "\n")
	// A trailing newline yields an empty last element that is never a stamp
	// point; leave it out of the rendered diff.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	after := make(map[int]bool, len(insertions))
	for _, ins := range insertions {
		after[ins.AfterLine] = true
	}

	block := insertedLines()
	ops := make([]op, 0, len(lines)+len(insertions)*len(block))

	for idx, line := range lines {
		ops = append(ops, op{kind: LineContext, content: line})
		if !after[idx] {
			continue
		}
		for _, added := range block {
			ops = append(ops, op{kind: LineAdd, content: added})
		}
	}

	return ops
}

// groupIntoHunks groups operations into hunks, merging change ranges whose
// gap is at most twice the context size.
func groupIntoHunks(ops []op) []Hunk {
	type changeRange struct {
		start, end int
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for idx, o := range ops {
		isChange := o.kind != LineContext
		if isChange && !inChange {
			rangeStart = idx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, idx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []Hunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) && ranges[mergeEnd].start-ranges[mergeEnd-1].end <= contextLines*2 {
			mergeEnd++
		}

		hunks = append(hunks, buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end))
		rangeIdx = mergeEnd
	}

	return hunks
}

func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, o := range ops[:start] {
		if o.kind == LineContext {
			hunk.OriginalStart++
		}
		hunk.ModifiedStart++
	}

	for _, o := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, Line{Kind: o.kind, Content: o.content})
		if o.kind == LineContext {
			hunk.OriginalCount++
		}
		hunk.ModifiedCount++
	}

	return hunk
}
