package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// withCompany selects jobs joined with their company so every row carries it.
func withCompany(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.Job{}).Joins("Company")
}

// List returns active jobs matching f, newest first, bounded by p.
func (s *JobService) List(ctx context.Context, f search.Filter, p search.Paging) ([]models.Job, error) {
	p = p.Normalize(search.DefaultLimit)
	jobs := make([]models.Job, 0, p.Limit)
	err := s.DB.WithContext(ctx).
		Scopes(withCompany, search.Scope(f, p)).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// Featured returns the newest active jobs with no other filter applied.
func (s *JobService) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	p := search.Paging{Limit: limit}.Normalize(search.FeaturedLimit)
	return s.List(ctx, search.Filter{}, p)
}

// Get returns one active job with its company, or ErrNotFound.
func (s *JobService) Get(ctx context.Context, id string) (*models.Job, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}

	var job models.Job
	result := s.DB.WithContext(ctx).
		Scopes(withCompany, search.Active().Scope).
		Where("jobs.id = ?", id).
		Limit(1).
		Find(&job)
	if result.Error != nil {
		return nil, fmt.Errorf("loading job %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &job, nil
}

func (s *JobService) CreateJob(ctx context.Context, in *dtos.JobCreationRequest) (*models.Job, error) {
	req := in.Trimmed()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return nil, fmt.Errorf("%w: salaryMin must not exceed salaryMax", ErrValidation)
	}

	companyID := req.CompanyID
	job := &models.Job{
		CompanyID:        &companyID,
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     optional(req.Requirements),
		Responsibilities: optional(req.Responsibilities),
		Location:         req.Location,
		Type:             req.Type,
		ExperienceLevel:  req.ExperienceLevel,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Skills:           append([]string{}, req.Skills...),
		IsActive:         req.Active == nil || *req.Active,
	}
	if req.PostedAt != nil {
		job.PostedAt = *req.PostedAt
	}

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return job, nil
}

// Deactivate soft-deletes a job so no read path returns it again.
func (s *JobService) Deactivate(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	result := s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivating job %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
