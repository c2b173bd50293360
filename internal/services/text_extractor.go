package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"pdf-summarizer/internal/logger"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

const (
	ExtractorPDF   = "pdf"
	ExtractorMuPDF = "mupdf"
)

// TextExtractor turns raw document bytes into plain text, one line break per page.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// NewTextExtractor returns the extractor registered under name.
func NewTextExtractor(name string, sanitizer *TextSanitizer) (TextExtractor, error) {
	switch name {
	case "", ExtractorPDF:
		return NewPDFExtractor(sanitizer), nil
	case ExtractorMuPDF:
		return NewMuPDFExtractor(sanitizer), nil
	default:
		return nil, fmt.Errorf("unsupported extractor: %s", name)
	}
}

// PDFExtractor reads the text layer with the pure Go ledongthuc/pdf reader.
type PDFExtractor struct {
	textSanitizer *TextSanitizer
}

func NewPDFExtractor(sanitizer *TextSanitizer) *PDFExtractor {
	return &PDFExtractor{textSanitizer: sanitizer}
}

func (e *PDFExtractor) ExtractText(data []byte) (text string, err error) {
	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = NewExtractionError(fmt.Errorf("%v", r))
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", NewExtractionError(err)
	}

	var builder strings.Builder
	numPages := pdfReader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if !page.V.IsNull() {
			pageText, err := page.GetPlainText(nil)
			if err != nil {
				return "", NewExtractionError(fmt.Errorf("page %d: %w", i, err))
			}
			builder.WriteString(pageText)
		}
		builder.WriteString("\n")
	}

	return finishText(e.textSanitizer, builder.String(), numPages, ExtractorPDF), nil
}

// MuPDFExtractor uses the MuPDF bindings, which cope better with unusual
// font encodings at the cost of cgo.
type MuPDFExtractor struct {
	textSanitizer *TextSanitizer
}

func NewMuPDFExtractor(sanitizer *TextSanitizer) *MuPDFExtractor {
	return &MuPDFExtractor{textSanitizer: sanitizer}
}

func (e *MuPDFExtractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", NewExtractionError(errors.New("empty document"))
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", NewExtractionError(err)
	}
	defer doc.Close()

	var builder strings.Builder
	numPages := doc.NumPage()

	for i := 0; i < numPages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", NewExtractionError(fmt.Errorf("page %d: %w", i+1, err))
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return finishText(e.textSanitizer, builder.String(), numPages, ExtractorMuPDF), nil
}

// finishText trims the page concatenation and returns it unchanged otherwise.
// Suspicious characters are only logged.
func finishText(sanitizer *TextSanitizer, raw string, pages int, engine string) string {
	text := strings.TrimSpace(raw)
	if sanitizer != nil {
		if problems := sanitizer.AnalyzeTextProblems(text); problems.HasProblems() {
			logger.WithFields(logrus.Fields{
				"engine":         engine,
				"controlChars":   problems.ControlChars,
				"zeroWidthChars": problems.ZeroWidthChars,
				"invalidUtf8":    problems.InvalidUTF8,
			}).Warn("Extracted text contains unusual characters")
		}
	}

	logger.WithFields(logrus.Fields{
		"engine":     engine,
		"pages":      pages,
		"textLength": utf8.RuneCountInString(text),
	}).Info("Extracted text from PDF")

	return text
}
