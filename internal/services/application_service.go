package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// CreateApplication stores an application whose files were already saved by the
// caller. File references are kept as given.
func (s *ApplicationService) CreateApplication(ctx context.Context, in *dtos.ApplicationCreationRequest) (*models.JobApplication, error) {
	req := in.Trimmed()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	app := &models.JobApplication{
		JobID:           req.JobID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           optional(req.Phone),
		Experience:      optional(req.Experience),
		Comments:        optional(req.Comments),
		ResumeURL:       optional(req.ResumeURL),
		CoverLetterURL:  optional(req.CoverLetterURL),
		AdditionalFiles: append([]string{}, req.AdditionalFiles...),
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, fmt.Errorf("creating application for job %s: %w", req.JobID, err)
	}
	return app, nil
}

// ListForJob returns the applications of one job, most recent first.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string, p search.Paging) ([]models.JobApplication, error) {
	apps := make([]models.JobApplication, 0)
	if !validID(jobID) {
		return apps, nil
	}
	p = p.Normalize(search.DefaultLimit)
	err := s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("listing applications for job %s: %w", jobID, err)
	}
	return apps, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.JobApplication, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var app models.JobApplication
	result := s.DB.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&app)
	if result.Error != nil {
		return nil, fmt.Errorf("loading application %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &app, nil
}

// ReferencedFiles returns the set of upload names held by any application.
func (s *ApplicationService) ReferencedFiles(ctx context.Context) (map[string]struct{}, error) {
	var apps []models.JobApplication
	err := s.DB.WithContext(ctx).
		Select("resume_url", "cover_letter_url", "additional_files").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("collecting referenced uploads: %w", err)
	}

	refs := make(map[string]struct{})
	for i := range apps {
		for _, name := range apps[i].Files() {
			refs[name] = struct{}{}
		}
	}
	return refs, nil
}
