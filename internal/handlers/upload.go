package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pdf-summarizer/internal/logger"
	"pdf-summarizer/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	processor *services.DocumentProcessor
}

func NewUploadHandler(processor *services.DocumentProcessor) *UploadHandler {
	return &UploadHandler{processor: processor}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, services.NewValidationError("No file uploaded in field 'file'"))
		return
	}

	logger.WithFields(logrus.Fields{
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	}).Info("Received /api/upload request")

	if err := h.processor.ValidateFilename(fileHeader.Filename); err != nil {
		respondError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondError(c, fmt.Errorf("read upload: %w", err))
		return
	}

	// A client disconnect must not abort the summary already in flight.
	ctx := context.WithoutCancel(c.Request.Context())

	resp, err := h.processor.Process(ctx, services.Document{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func asServiceError(err error) (*services.ServiceError, bool) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}
