package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
)

type MessageCreator interface {
	CreateMessage(ctx context.Context, req *dtos.ContactRequest) (*models.ContactMessage, error)
}

type ContactHandler struct {
	Messages MessageCreator
	Notifier Notifier
	Logger   *log.Logger
}

func NewContactHandler(messages MessageCreator, notifier Notifier, logger *log.Logger) *ContactHandler {
	return &ContactHandler{Messages: messages, Notifier: notifier, Logger: logger}
}

// CreateMessage is POST /api/contact
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, h.Logger, "CreateMessage", err, "Invalid contact data")
		return
	}

	msg, err := h.Messages.CreateMessage(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, "CreateMessage", err, "")
		return
	}

	h.Notifier.ContactReceived(msg)
	c.JSON(http.StatusCreated, msg)
}
