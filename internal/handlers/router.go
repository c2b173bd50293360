package handlers

import (
	"fmt"
	"net/http"

	"pdf-summarizer/internal/logger"
	"pdf-summarizer/internal/models"
	"pdf-summarizer/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName = "PDF Summarizer API"
	Version     = "1.0.0"
)

// NewRouter wires middleware and routes. maxMemory bounds how much of a
// multipart body gin keeps in memory before spilling to temp files.
func NewRouter(processor *services.DocumentProcessor, maxMemory int64) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = maxMemory
	router.HandleMethodNotAllowed = true

	router.Use(logger.Middleware())
	router.Use(gin.CustomRecovery(recoverInternalError))
	router.Use(CORSMiddleware())

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Detail: "Method Not Allowed"})
	})

	router.GET("/", Root)

	api := router.Group("/api")
	{
		uploadHandler := NewUploadHandler(processor)
		api.POST("/upload", uploadHandler.Upload)
	}

	return router
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{
		Message: ServiceName + " is running",
		Version: Version,
	})
}

func recoverInternalError(c *gin.Context, recovered interface{}) {
	respondError(c, services.NewInternalError(fmt.Errorf("%v", recovered)))
}

// respondError writes the {"detail": ...} body. Errors that are not a
// *services.ServiceError become a generic 500.
func respondError(c *gin.Context, err error) {
	svcErr, ok := asServiceError(err)
	if !ok {
		svcErr = services.NewInternalError(err)
	}

	fields := logrus.Fields{
		"path":   c.Request.URL.Path,
		"kind":   svcErr.Kind,
		"status": svcErr.Status,
		"error":  err.Error(),
	}
	if svcErr.Status >= http.StatusInternalServerError {
		logger.WithFields(fields).Error("Request failed")
	} else {
		logger.WithFields(fields).Warn("Request rejected")
	}

	c.AbortWithStatusJSON(svcErr.Status, models.ErrorResponse{Detail: svcErr.Detail})
}
