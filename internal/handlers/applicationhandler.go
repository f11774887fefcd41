package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
)

// Multipart file fields of the apply form and how many of each are accepted.
const (
	resumeField      = "resume"
	coverLetterField = "coverLetter"
	additionalField  = "additionalFiles"

	maxAdditionalFiles = 5
)

type ApplicationCreator interface {
	CreateApplication(ctx context.Context, req *dtos.ApplicationCreationRequest) (*models.JobApplication, error)
}

// FileStore persists uploaded bytes and hands back opaque names.
type FileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(names ...string) error
	Path(name string) (string, error)
}

// Notifier is told about every stored submission.
type Notifier interface {
	ApplicationReceived(job *models.Job, app *models.JobApplication)
	ContactReceived(msg *models.ContactMessage)
}

type ApplicationHandler struct {
	Jobs         JobReader
	Applications ApplicationCreator
	Files        FileStore
	Notifier     Notifier
	Logger       *log.Logger
	// MaxFileBytes bounds each file; the whole request may carry every file at that size.
	MaxFileBytes int64
}

func NewApplicationHandler(jobs JobReader, apps ApplicationCreator, files FileStore, notifier Notifier, maxFileBytes int64, logger *log.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Jobs:         jobs,
		Applications: apps,
		Files:        files,
		Notifier:     notifier,
		Logger:       logger,
		MaxFileBytes: maxFileBytes,
	}
}

// Apply is POST /api/jobs/:id/apply
func (h *ApplicationHandler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	job, err := h.Jobs.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, "Apply", err, "Job not found")
		return
	}

	if h.MaxFileBytes > 0 {
		limit := h.MaxFileBytes*(2+maxAdditionalFiles) + 1<<20
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	var form dtos.ApplicationForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(c, h.Logger, "Apply", err, "File too large")
			return
		}
		badRequest(c, h.Logger, "Apply", err, "Invalid application data")
		return
	}

	files := c.Request.MultipartForm.File
	if problem := fileCountProblem(files); problem != "" {
		badRequest(c, h.Logger, "Apply", errors.New(problem), problem)
		return
	}

	var saved []string
	save := func(fh *multipart.FileHeader) (string, error) {
		name, err := h.Files.Save(fh)
		if err == nil {
			saved = append(saved, name)
		}
		return name, err
	}
	cleanup := func() {
		if err := h.Files.Remove(saved...); err != nil {
			h.Logger.Printf("Apply: removing uploads after failure: %v", err)
		}
	}

	req := &dtos.ApplicationCreationRequest{
		JobID:           job.ID,
		ApplicationForm: form,
	}
	if req.ResumeURL, err = save(files[resumeField][0]); err != nil {
		cleanup()
		respondError(c, h.Logger, "Apply", err, "")
		return
	}
	if fhs := files[coverLetterField]; len(fhs) == 1 {
		if req.CoverLetterURL, err = save(fhs[0]); err != nil {
			cleanup()
			respondError(c, h.Logger, "Apply", err, "")
			return
		}
	}
	for _, fh := range files[additionalField] {
		name, err := save(fh)
		if err != nil {
			cleanup()
			respondError(c, h.Logger, "Apply", err, "")
			return
		}
		req.AdditionalFiles = append(req.AdditionalFiles, name)
	}

	app, err := h.Applications.CreateApplication(ctx, req)
	if err != nil {
		cleanup()
		respondError(c, h.Logger, "Apply", err, "Job not found")
		return
	}

	h.Notifier.ApplicationReceived(job, app)
	c.JSON(http.StatusCreated, app)
}

// fileCountProblem returns a client message when the upload counts are off.
func fileCountProblem(files map[string][]*multipart.FileHeader) string {
	switch n := len(files[resumeField]); {
	case n == 0:
		return "Resume is required"
	case n > 1:
		return "Only one resume may be uploaded"
	}
	if len(files[coverLetterField]) > 1 {
		return "Only one cover letter may be uploaded"
	}
	if len(files[additionalField]) > maxAdditionalFiles {
		return fmt.Sprintf("At most %d additional files may be uploaded", maxAdditionalFiles)
	}
	return ""
}
