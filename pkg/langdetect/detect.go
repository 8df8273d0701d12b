// Package langdetect identifies the language of a target file so callers
// can warn when its comment syntax does not match the inserted block.
// It uses go-enry, the Go port of GitHub Linguist.
package langdetect

import (
	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no strategy yields a confident answer.
const Unknown = ""

// classifierCandidates bounds the content classifier to languages a target
// file is likely to be written in.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"JavaScript", "TypeScript", "TSX", "Go", "C", "C++", "C#", "Java",
	"Kotlin", "Swift", "Rust", "PHP", "CSS", "Python", "Ruby", "Shell",
}

// cStyleLanguages are languages whose comments start with "//" or "/*".
//
//nolint:gochecknoglobals // Read-only lookup table.
var cStyleLanguages = map[string]struct{}{
	"C":           {},
	"C#":          {},
	"C++":         {},
	"CSS":         {},
	"Dart":        {},
	"Go":          {},
	"Groovy":      {},
	"Java":        {},
	"JavaScript":  {},
	"JSX":         {},
	"Kotlin":      {},
	"Less":        {},
	"Objective-C": {},
	"PHP":         {},
	"Rust":        {},
	"SCSS":        {},
	"Scala":       {},
	"Swift":       {},
	"TSX":         {},
	"TypeScript":  {},
}

// Detect returns the Linguist name of the language of the file at path
// with the given content, or Unknown.
func Detect(path string, content []byte) string {
	// Strategy 1: extension and well-known filenames.
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return lang
	}

	if len(content) == 0 {
		return Unknown
	}

	// Strategy 2: shebang.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	// Strategy 3: classifier restricted to likely candidates.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return lang
	}

	return Unknown
}

// CStyleComments reports whether lang uses "//" and "/* */" comments.
// Unknown is treated as compatible so that detection failures never block.
func CStyleComments(lang string) bool {
	if lang == Unknown {
		return true
	}
	_, ok := cStyleLanguages[lang]
	return ok
}
