package annotate

import "strings"

// Comment markers recognized by the classifier. Classification is purely
// lexical: strings containing these markers are not special-cased.
const (
	lineCommentMarker   = "//"
	blockOpenMarker     = "/*"
	blockContinueMarker = "*"
	blockCloseMarker    = "*/"
)

// Kind is the two-valued classification of a source line.
type Kind int

const (
	// KindNonCode is a blank line or one that looks like part of a comment.
	KindNonCode Kind = iota

	// KindCode is any other non-empty line.
	KindCode
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindNonCode:
		return "non-code"
	default:
		return "unknown"
	}
}

// Classify reports whether line counts towards the cadence.
//
// A line is non-code when, after trimming surrounding whitespace, it is
// empty, starts with "//", "/*" or "*", or ends with "*/".
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)

	switch {
	case trimmed == "":
		return KindNonCode
	case strings.HasPrefix(trimmed, lineCommentMarker),
		strings.HasPrefix(trimmed, blockOpenMarker),
		strings.HasPrefix(trimmed, blockContinueMarker),
		strings.HasSuffix(trimmed, blockCloseMarker):
		return KindNonCode
	default:
		return KindCode
	}
}

// IsCommentStart reports whether line opens a line or block comment.
// It is narrower than Classify: continuation and closing lines do not count.
func IsCommentStart(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, lineCommentMarker) ||
		strings.HasPrefix(trimmed, blockOpenMarker)
}
