package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"pdf-summarizer/internal/logger"
	"pdf-summarizer/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	AcceptedExtension = ".pdf"
	MinTextLength     = 50
	PreviewLength     = 1000
)

// Document is an uploaded file held in memory for the duration of one request.
type Document struct {
	Filename string
	Content  []byte
}

type DocumentProcessor struct {
	extractor    TextExtractor
	summarizer   Summarizer
	maxFileBytes int64
}

func NewDocumentProcessor(extractor TextExtractor, summarizer Summarizer, maxFileBytes int64) *DocumentProcessor {
	return &DocumentProcessor{
		extractor:    extractor,
		summarizer:   summarizer,
		maxFileBytes: maxFileBytes,
	}
}

// ValidateFilename accepts only names ending in .pdf, in any letter case.
func (p *DocumentProcessor) ValidateFilename(filename string) error {
	if !strings.HasSuffix(strings.ToLower(filename), AcceptedExtension) {
		return NewValidationError("Only PDF files are accepted")
	}
	return nil
}

func (p *DocumentProcessor) ValidateSize(size int64) error {
	if size > p.maxFileBytes {
		return NewValidationError(
			"File exceeds the maximum allowed size of %d MB",
			p.maxFileBytes/(1024*1024),
		)
	}
	return nil
}

// Extract validates the document and returns its text, failing when the text
// is too short to be worth summarizing.
func (p *DocumentProcessor) Extract(doc Document) (string, error) {
	if err := p.ValidateFilename(doc.Filename); err != nil {
		return "", err
	}
	if err := p.ValidateSize(int64(len(doc.Content))); err != nil {
		return "", err
	}

	text, err := p.extractor.ExtractText(doc.Content)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return "", err
		}
		return "", NewExtractionError(err)
	}

	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinTextLength {
		logger.WithFields(logrus.Fields{
			"filename":   doc.Filename,
			"textLength": utf8.RuneCountInString(text),
		}).Warn("Very little text extracted from PDF")
		return "", NewValidationError("The PDF does not contain enough text or is protected")
	}

	return text, nil
}

// Process runs the whole pipeline: validate, extract, summarize.
func (p *DocumentProcessor) Process(ctx context.Context, doc Document) (*models.UploadResponse, error) {
	logger.WithFields(logrus.Fields{
		"filename": doc.Filename,
		"size":     len(doc.Content),
	}).Info("Processing PDF document")

	text, err := p.Extract(doc)
	if err != nil {
		return nil, err
	}

	summary, err := p.summarizer.Summarize(ctx, text)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, err
		}
		return nil, NewSummarizationError(err)
	}

	textLength := utf8.RuneCountInString(text)

	logger.WithFields(logrus.Fields{
		"filename":      doc.Filename,
		"textLength":    textLength,
		"summaryLength": utf8.RuneCountInString(summary),
	}).Info("Successfully summarized PDF document")

	return &models.UploadResponse{
		Success:       true,
		Filename:      doc.Filename,
		ExtractedText: Preview(text),
		Summary:       summary,
		TextLength:    textLength,
	}, nil
}

// Preview returns the first PreviewLength characters of text, with an
// ellipsis when something was cut.
func Preview(text string) string {
	return truncateRunes(text, PreviewLength)
}
