package dtos

import "time"

type CompanyCreationRequest struct {
	Name        string `json:"name" yaml:"name" binding:"required,max=200"`
	Logo        string `json:"logo" yaml:"logo" binding:"omitempty,url"`
	Description string `json:"description" yaml:"description"`
	Industry    string `json:"industry" yaml:"industry" binding:"max=100"`
	Size        string `json:"size" yaml:"size" binding:"max=50"`
	Location    string `json:"location" yaml:"location" binding:"max=200"`
	Website     string `json:"website" yaml:"website" binding:"omitempty,url"`
}

type JobCreationRequest struct {
	CompanyID        string `json:"companyId" yaml:"companyId" binding:"required,uuid"`
	Title            string `json:"title" yaml:"title" binding:"required,max=200"`
	Description      string `json:"description" yaml:"description" binding:"required"`
	Requirements     string `json:"requirements" yaml:"requirements"`
	Responsibilities string `json:"responsibilities" yaml:"responsibilities"`
	Location         string `json:"location" yaml:"location" binding:"required,max=200"`
	Type             string `json:"type" yaml:"type" binding:"required,oneof=full-time part-time contract remote other"`
	ExperienceLevel  string `json:"experienceLevel" yaml:"experienceLevel" binding:"required,max=50"`

	// Optional Fields
	SalaryMin *int       `json:"salaryMin" yaml:"salaryMin" binding:"omitempty,min=0"`
	SalaryMax *int       `json:"salaryMax" yaml:"salaryMax" binding:"omitempty,min=0"`
	Skills    []string   `json:"skills" yaml:"skills" binding:"dive,required,max=50"`
	Active    *bool      `json:"isActive" yaml:"isActive"` // Defaults to true if nil
	PostedAt  *time.Time `json:"postedAt" yaml:"postedAt"`
}
