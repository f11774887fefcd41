package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
	"gorm.io/gorm"
)

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{
		DB: db,
	}
}

func (s *ContactService) CreateMessage(ctx context.Context, in *dtos.ContactRequest) (*models.ContactMessage, error) {
	req := in.Trimmed()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   optional(req.Phone),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.DB.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("saving contact message: %w", err)
	}
	return msg, nil
}

func (s *ContactService) List(ctx context.Context, p search.Paging) ([]models.ContactMessage, error) {
	p = p.Normalize(search.DefaultLimit)
	msgs := make([]models.ContactMessage, 0, p.Limit)
	err := s.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	return msgs, nil
}
