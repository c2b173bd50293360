package services

import (
	"regexp"
	"unicode/utf8"
)

var (
	// Skips \t (9), \n (10) and \r (13).
	controlCharsRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	zeroWidthRegex    = regexp.MustCompile(`[\x{200B}-\x{200D}\x{2060}\x{FEFF}]`)
)

// TextSanitizer inspects extracted text for characters that usually signal a
// broken font encoding. It only reports; the text itself is never rewritten.
type TextSanitizer struct{}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{}
}

type TextProblems struct {
	ControlChars   int
	ZeroWidthChars int
	InvalidUTF8    bool
}

func (p TextProblems) HasProblems() bool {
	return p.ControlChars > 0 || p.ZeroWidthChars > 0 || p.InvalidUTF8
}

func (ts *TextSanitizer) AnalyzeTextProblems(text string) TextProblems {
	if text == "" {
		return TextProblems{}
	}

	return TextProblems{
		ControlChars:   len(controlCharsRegex.FindAllStringIndex(text, -1)),
		ZeroWidthChars: len(zeroWidthRegex.FindAllStringIndex(text, -1)),
		InvalidUTF8:    !utf8.ValidString(text),
	}
}
