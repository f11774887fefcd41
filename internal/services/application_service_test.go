package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobboard/internal/database/dbtest"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/search"
)

func validApplication() *dtos.ApplicationCreationRequest {
	return &dtos.ApplicationCreationRequest{
		JobID: uuid.NewString(),
		ApplicationForm: dtos.ApplicationForm{
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Email:      "ada@example.com",
			Experience: "4-6",
		},
		ResumeURL:       "resume.pdf",
		AdditionalFiles: []string{"portfolio.png"},
	}
}

func TestCreateApplication(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	req := validApplication()
	app, err := NewApplicationService(db).CreateApplication(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.False(t, app.AppliedAt.IsZero())
	assert.Equal(t, req.JobID, app.JobID)
	require.NotNil(t, app.ResumeURL)
	assert.Equal(t, "resume.pdf", *app.ResumeURL)
	assert.Nil(t, app.CoverLetterURL)
	assert.Nil(t, app.Phone)
	assert.Equal(t, []string{"resume.pdf", "portfolio.png"}, app.Files())
	assert.Contains(t, rec.Last(), `INSERT INTO "job_applications"`)
}

func TestCreateApplicationRequiresResume(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	req := validApplication()
	req.ResumeURL = ""
	_, err := NewApplicationService(db).CreateApplication(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, rec.Statements())
}

func TestCreateApplicationRejectsBadFields(t *testing.T) {
	cases := map[string]func(*dtos.ApplicationCreationRequest){
		"bad email":        func(r *dtos.ApplicationCreationRequest) { r.Email = "not-an-email" },
		"missing name":     func(r *dtos.ApplicationCreationRequest) { r.FirstName = "" },
		"blank last name":  func(r *dtos.ApplicationCreationRequest) { r.LastName = "  " },
		"blank resume":     func(r *dtos.ApplicationCreationRequest) { r.ResumeURL = " " },
		"unknown bracket":  func(r *dtos.ApplicationCreationRequest) { r.Experience = "20+" },
		"too many files":   func(r *dtos.ApplicationCreationRequest) { r.AdditionalFiles = []string{"a", "b", "c", "d", "e", "f"} },
		"blank file entry": func(r *dtos.ApplicationCreationRequest) { r.AdditionalFiles = []string{""} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validApplication()
			mutate(req)
			_, err := NewApplicationService(dbtest.DryRun(t)).CreateApplication(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestListForJob(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)
	svc := NewApplicationService(db)

	apps, err := svc.ListForJob(context.Background(), "garbage", search.Paging{})
	require.NoError(t, err)
	assert.Empty(t, apps)
	assert.Empty(t, rec.Statements())

	jobID := uuid.NewString()
	_, err = svc.ListForJob(context.Background(), jobID, search.Paging{Limit: 5})
	require.NoError(t, err)
	assert.Contains(t, rec.Last(), "job_id = '"+jobID+"'")
	assert.Contains(t, rec.Last(), "ORDER BY applied_at DESC, id DESC")
	assert.Contains(t, rec.Last(), "LIMIT 5")
}

func TestReferencedFilesSelectsOnlyFileColumns(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	refs, err := NewApplicationService(db).ReferencedFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, refs)

	sql := rec.Last()
	assert.Contains(t, sql, `"cover_letter_url"`)
	assert.Contains(t, sql, `"additional_files"`)
	assert.NotContains(t, sql, `"email"`)
}

func TestGetApplicationNotFound(t *testing.T) {
	svc := NewApplicationService(dbtest.DryRun(t))

	_, err := svc.Get(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
