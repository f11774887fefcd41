package database

import (
	"fmt"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

// SeedDemoData fills an empty database with a few companies, jobs and posts.
// It does nothing once any company exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	companies, jobs, posts := demoData(time.Now())
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&companies).Error; err != nil {
			return fmt.Errorf("seeding companies: %w", err)
		}
		for i := range jobs {
			jobs[i].CompanyID = &companies[i%len(companies)].ID
		}
		if err := tx.Create(&jobs).Error; err != nil {
			return fmt.Errorf("seeding jobs: %w", err)
		}
		if err := tx.Create(&posts).Error; err != nil {
			return fmt.Errorf("seeding blog posts: %w", err)
		}
		return nil
	})
}

func str(s string) *string { return &s }

func num(n int) *int { return &n }

// demoData returns the seed rows; jobs are linked to companies round-robin by the caller.
func demoData(now time.Time) ([]models.Company, []models.Job, []models.BlogPost) {
	companies := []models.Company{
		{
			Name:        "Northwind Labs",
			Description: str("Developer tooling for distributed teams."),
			Industry:    str("Software"),
			Size:        str("51-200"),
			Location:    str("Berlin, Germany"),
			Website:     str("https://northwind.example"),
		},
		{
			Name:        "Harbor Health",
			Description: str("Digital clinics and patient records."),
			Industry:    str("Healthcare"),
			Size:        str("201-500"),
			Location:    str("Boston, MA"),
			Website:     str("https://harborhealth.example"),
		},
		{
			Name:        "Fieldstone Finance",
			Description: str("Payments infrastructure for small businesses."),
			Industry:    str("Fintech"),
			Size:        str("11-50"),
			Location:    str("Remote"),
		},
	}

	jobs := []models.Job{
		{
			Title:           "Senior Backend Engineer",
			Description:     "Own the services behind our build pipeline.",
			Requirements:    str("5+ years with Go or Java. Strong SQL."),
			Location:        "Berlin, Germany",
			Type:            models.JobTypeFullTime,
			ExperienceLevel: "senior",
			SalaryMin:       num(90000),
			SalaryMax:       num(120000),
			Skills:          []string{"go", "postgresql", "kubernetes"},
			IsActive:        true,
			PostedAt:        now.Add(-2 * time.Hour),
		},
		{
			Title:           "Clinical Data Analyst",
			Description:     "Turn patient outcomes into reports clinicians trust.",
			Location:        "Boston, MA",
			Type:            models.JobTypeContract,
			ExperienceLevel: "mid",
			SalaryMin:       num(70000),
			SalaryMax:       num(85000),
			Skills:          []string{"sql", "python"},
			IsActive:        true,
			PostedAt:        now.Add(-26 * time.Hour),
		},
		{
			Title:           "Frontend Developer",
			Description:     "Build the merchant dashboard.",
			Location:        "Remote",
			Type:            models.JobTypeRemote,
			ExperienceLevel: "mid",
			Skills:          []string{"typescript", "react"},
			IsActive:        true,
			PostedAt:        now.Add(-50 * time.Hour),
		},
		{
			Title:           "Platform Intern",
			Description:     "Summer internship on the infrastructure team.",
			Location:        "Berlin, Germany",
			Type:            models.JobTypePartTime,
			ExperienceLevel: "entry",
			SalaryMin:       num(0),
			SalaryMax:       num(20000),
			Skills:          []string{"linux"},
			IsActive:        false,
			PostedAt:        now.Add(-72 * time.Hour),
		},
	}

	posts := []models.BlogPost{
		{
			Title:       "How to Write a Resume Recruiters Read",
			Slug:        "how-to-write-a-resume-recruiters-read",
			Excerpt:     "Six seconds is all you get. Make them count.",
			Content:     "Lead with impact, keep it to one page, and tailor it to the role.",
			AuthorName:  "Jordan Lee",
			Category:    "Career Advice",
			Tags:        []string{"resume", "job search"},
			IsPublished: true,
			PublishedAt: now.Add(-24 * time.Hour),
		},
		{
			Title:       "Remote Interviews: A Checklist",
			Slug:        "remote-interviews-a-checklist",
			Excerpt:     "Camera, audio, and a quiet room.",
			Content:     "Test your setup the day before and keep notes off screen.",
			AuthorName:  "Priya Nair",
			Category:    "Interviews",
			Tags:        []string{"remote", "interviews"},
			IsPublished: true,
			PublishedAt: now.Add(-96 * time.Hour),
		},
	}

	return companies, jobs, posts
}
