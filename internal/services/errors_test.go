package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/jobboard/internal/database/dbtest"
)

func TestValidIDAcceptsOnlyHyphenatedForm(t *testing.T) {
	id := uuid.NewString()

	assert.True(t, validID(id))
	assert.True(t, validID(strings.ToUpper(id)))

	for _, bad := range []string{
		"",
		"1",
		"urn:uuid:" + id,
		"{" + id + "}",
		strings.ReplaceAll(id, "-", ""),
		id[:35] + "z",
	} {
		assert.Falsef(t, validID(bad), "id %q", bad)
	}
}

func TestGetWithURNFormIsNotFound(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	_, err := NewJobService(db).Get(context.Background(), "urn:uuid:"+uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewCompanyService(db).Get(context.Background(), "urn:uuid:"+uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, rec.Statements())
}
