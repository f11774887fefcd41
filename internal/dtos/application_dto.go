package dtos

// ApplicationForm is the text part of the multipart apply form.
type ApplicationForm struct {
	FirstName  string `form:"firstName" json:"firstName" binding:"required,max=100"`
	LastName   string `form:"lastName" json:"lastName" binding:"required,max=100"`
	Email      string `form:"email" json:"email" binding:"required,email,max=254"`
	Phone      string `form:"phone" json:"phone" binding:"max=40"`
	Experience string `form:"experience" json:"experience" binding:"omitempty,oneof=0-1 2-3 4-6 7-10 10+"`
	Comments   string `form:"comments" json:"comments" binding:"max=5000"`
}

// ApplicationCreationRequest carries the form plus the names of files that are
// already stored.
type ApplicationCreationRequest struct {
	JobID string `binding:"required,uuid"`
	ApplicationForm

	ResumeURL       string   `binding:"required"`
	CoverLetterURL  string
	AdditionalFiles []string `binding:"max=5,dive,required"`
}
