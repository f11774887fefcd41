package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Employment types accepted for Job.Type.
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
	JobTypeRemote   = "remote"
	JobTypeOther    = "other"
)

// JobTypes lists every employment type in display order.
var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote, JobTypeOther}

// ExperienceBrackets are the values an applicant may pick for JobApplication.Experience.
var ExperienceBrackets = []string{"0-1", "2-3", "4-6", "7-10", "10+"}

func newID() string {
	return uuid.NewString()
}

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password []byte `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = newID()
	}
	return nil
}

type Company struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Name        string  `gorm:"not null" json:"name"`
	Logo        *string `json:"logo"`
	Description *string `gorm:"type:text" json:"description"`
	Industry    *string `json:"industry"`
	Size        *string `json:"size"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = newID()
	}
	return nil
}

type Job struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// Foreign Key
	CompanyID *string `gorm:"type:uuid;index" json:"companyId"`
	// Filled by Joins("Company"); nil when the join finds no row.
	Company *Company `json:"company"`

	Title            string         `gorm:"not null" json:"title"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Requirements     *string        `gorm:"type:text" json:"requirements"`
	Responsibilities *string        `gorm:"type:text" json:"responsibilities"`
	Location         string         `gorm:"not null" json:"location"`
	Type             string         `gorm:"not null" json:"type"`
	ExperienceLevel  string         `gorm:"not null" json:"experienceLevel"`
	SalaryMin        *int           `json:"salaryMin"`
	SalaryMax        *int           `json:"salaryMax"`
	Skills           pq.StringArray `gorm:"type:text[]" json:"skills"`
	IsActive         bool           `gorm:"not null" json:"isActive"`
	PostedAt         time.Time      `gorm:"autoCreateTime" json:"postedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = newID()
	}
	return nil
}

type JobApplication struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	JobID string `gorm:"type:uuid;not null;index" json:"jobId"`

	FirstName       string         `gorm:"not null" json:"firstName"`
	LastName        string         `gorm:"not null" json:"lastName"`
	Email           string         `gorm:"not null" json:"email"`
	Phone           *string        `json:"phone"`
	Experience      *string        `json:"experience"`
	Comments        *string        `gorm:"type:text" json:"comments"`
	ResumeURL       *string        `json:"resumeUrl"`
	CoverLetterURL  *string        `json:"coverLetterUrl"`
	AdditionalFiles pq.StringArray `gorm:"type:text[]" json:"additionalFiles"`
	AppliedAt       time.Time      `gorm:"autoCreateTime;index" json:"appliedAt"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = newID()
	}
	return nil
}

// Files returns every upload reference held by the application.
func (a *JobApplication) Files() []string {
	var files []string
	if a.ResumeURL != nil && *a.ResumeURL != "" {
		files = append(files, *a.ResumeURL)
	}
	if a.CoverLetterURL != nil && *a.CoverLetterURL != "" {
		files = append(files, *a.CoverLetterURL)
	}
	return append(files, a.AdditionalFiles...)
}

type BlogPost struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title         string         `gorm:"not null" json:"title"`
	Slug          string         `gorm:"not null;index" json:"slug"`
	Excerpt       string         `gorm:"type:text;not null" json:"excerpt"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	AuthorName    string         `gorm:"not null" json:"authorName"`
	AuthorAvatar  *string        `json:"authorAvatar"`
	Category      string         `gorm:"not null" json:"category"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	FeaturedImage *string        `json:"featuredImage"`
	IsPublished   bool           `gorm:"not null" json:"isPublished"`
	PublishedAt   time.Time      `gorm:"autoCreateTime" json:"publishedAt"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}

type ContactMessage struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Name    string  `gorm:"not null" json:"name"`
	Email   string  `gorm:"not null" json:"email"`
	Phone   *string `json:"phone"`
	Subject string  `gorm:"not null" json:"subject"`
	Message string  `gorm:"type:text;not null" json:"message"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = newID()
	}
	return nil
}

// All returns every model in migration order.
func All() []any {
	return []any{&User{}, &Company{}, &Job{}, &JobApplication{}, &BlogPost{}, &ContactMessage{}}
}
