package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{
		DB: db,
	}
}

// List returns companies, newest first.
func (s *CompanyService) List(ctx context.Context, p search.Paging) ([]models.Company, error) {
	p = p.Normalize(search.MaxLimit)
	companies := make([]models.Company, 0)
	err := s.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var company models.Company
	result := s.DB.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&company)
	if result.Error != nil {
		return nil, fmt.Errorf("loading company %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &company, nil
}

// FindByName matches case-insensitively; the seed CLI uses it to resolve fixtures.
func (s *CompanyService) FindByName(ctx context.Context, name string) (*models.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}
	var company models.Company
	result := s.DB.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		Limit(1).
		Find(&company)
	if result.Error != nil {
		return nil, fmt.Errorf("finding company %q: %w", name, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &company, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, in *dtos.CompanyCreationRequest) (*models.Company, error) {
	req := in.Trimmed()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:        req.Name,
		Logo:        optional(req.Logo),
		Description: optional(req.Description),
		Industry:    optional(req.Industry),
		Size:        optional(req.Size),
		Location:    optional(req.Location),
		Website:     optional(req.Website),
	}
	if err := s.DB.WithContext(ctx).Create(company).Error; err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return company, nil
}
