package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/search"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/storage"
)

// respondError logs err with its operation and writes a coarse client message.
// notFound is the message used for services.ErrNotFound.
func respondError(c *gin.Context, logger *log.Logger, op string, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		logger.Printf("%s: %v", op, err)
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, search.ErrInvalidFilter):
		logger.Printf("%s: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
	case errors.Is(err, services.ErrValidation):
		logger.Printf("%s: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
	case errors.Is(err, storage.ErrUnsupportedType):
		logger.Printf("%s: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only PDF, DOC, DOCX, JPEG and PNG files are allowed."})
	case errors.Is(err, storage.ErrTooLarge):
		logger.Printf("%s: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
	default:
		logger.Printf("%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// badRequest logs a client error and answers 400 with msg.
func badRequest(c *gin.Context, logger *log.Logger, op string, err error, msg string) {
	logger.Printf("%s: bad request: %v", op, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
