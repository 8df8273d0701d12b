// Package annotate inserts the decorative block comment into source text.
//
// The transformation is a single left-to-right pass over the lines of a
// document. Every line is classified as code or non-code; once Cadence
// code lines have accumulated since the last insertion, the block is
// appended after the current code line unless the next line already opens
// a comment.
package annotate

import "strings"

// Cadence is the number of code lines that must accumulate between two
// insertions.
const Cadence = 7

// Insertion records where a block was inserted.
type Insertion struct {
	// AfterLine is the 0-based index of the original line the block follows.
	AfterLine int

	// CodeLines is the number of code lines seen when the block was inserted.
	CodeLines int
}

// Result is the outcome of annotating a document.
type Result struct {
	// Output is the annotated text.
	Output string

	// Insertions lists every inserted block, in document order.
	Insertions []Insertion

	// Lines is the number of lines in the original document.
	Lines int

	// CodeLines is the number of lines classified as code.
	CodeLines int

	// Suppressed counts threshold hits skipped because the next line was a comment.
	Suppressed int
}

// Changed reports whether at least one block was inserted.
func (r *Result) Changed() bool {
	return len(r.Insertions) > 0
}

// cursor is the state carried through a single pass.
type cursor struct {
	codeLines int
	lastStamp int
}

// due reports whether enough code lines have accumulated since the last stamp.
func (c cursor) due() bool {
	return c.codeLines-c.lastStamp >= Cadence
}

// Annotate returns content with Block inserted after every qualifying run
// of code lines. Each insertion is preceded by an empty line.
//
// Annotate is not idempotent: running it on its own output inserts more
// blocks, because the original code lines are counted again.
func Annotate(content string) Result {
	lines := strings.Split(content, "\n")

	result := Result{Lines: len(lines)}
	out := make([]string, 0, len(lines))

	var cur cursor
	for idx, line := range lines {
		out = append(out, line)

		if Classify(line) != KindCode {
			continue
		}
		cur.codeLines++

		if !cur.due() {
			continue
		}

		if idx+1 < len(lines) && IsCommentStart(lines[idx+1]) {
			result.Suppressed++
			continue
		}

		out = append(out, "", Block)
		cur.lastStamp = cur.codeLines
		result.Insertions = append(result.Insertions, Insertion{
			AfterLine: idx,
			CodeLines: cur.codeLines,
		})
	}

	result.CodeLines = cur.codeLines
	result.Output = strings.Join(out, "\n")

	return result
}
