package dtos

import "strings"

// The Trimmed methods return a copy with surrounding whitespace removed from
// every text field, so a whitespace-only value fails a `required` check.

func (r JobCreationRequest) Trimmed() JobCreationRequest {
	r.CompanyID = strings.TrimSpace(r.CompanyID)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Requirements = strings.TrimSpace(r.Requirements)
	r.Responsibilities = strings.TrimSpace(r.Responsibilities)
	r.Location = strings.TrimSpace(r.Location)
	r.Type = strings.TrimSpace(r.Type)
	r.ExperienceLevel = strings.TrimSpace(r.ExperienceLevel)
	r.Skills = trimAll(r.Skills)
	return r
}

func (r CompanyCreationRequest) Trimmed() CompanyCreationRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Logo = strings.TrimSpace(r.Logo)
	r.Description = strings.TrimSpace(r.Description)
	r.Industry = strings.TrimSpace(r.Industry)
	r.Size = strings.TrimSpace(r.Size)
	r.Location = strings.TrimSpace(r.Location)
	r.Website = strings.TrimSpace(r.Website)
	return r
}

func (f ApplicationForm) Trimmed() ApplicationForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Experience = strings.TrimSpace(f.Experience)
	f.Comments = strings.TrimSpace(f.Comments)
	return f
}

func (r ApplicationCreationRequest) Trimmed() ApplicationCreationRequest {
	r.JobID = strings.TrimSpace(r.JobID)
	r.ApplicationForm = r.ApplicationForm.Trimmed()
	r.ResumeURL = strings.TrimSpace(r.ResumeURL)
	r.CoverLetterURL = strings.TrimSpace(r.CoverLetterURL)
	r.AdditionalFiles = trimAll(r.AdditionalFiles)
	return r
}

func (r BlogPostCreationRequest) Trimmed() BlogPostCreationRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.Content = strings.TrimSpace(r.Content)
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.AuthorAvatar = strings.TrimSpace(r.AuthorAvatar)
	r.Category = strings.TrimSpace(r.Category)
	r.Tags = trimAll(r.Tags)
	r.FeaturedImage = strings.TrimSpace(r.FeaturedImage)
	return r
}

func (r ContactRequest) Trimmed() ContactRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

// Passwords are compared byte for byte, so only the username is trimmed.
func (r UserCreationRequest) Trimmed() UserCreationRequest {
	r.Username = strings.TrimSpace(r.Username)
	return r
}

func trimAll(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
