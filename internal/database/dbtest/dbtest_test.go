package dbtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSearchPath(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@db:5432/jobs?search_path=s1&sslmode=disable",
		withSearchPath("postgres://u:p@db:5432/jobs?sslmode=disable", "s1"))
	assert.Equal(t,
		"host=db user=u dbname=jobs search_path=s1",
		withSearchPath("host=db user=u dbname=jobs", "s1"))
}

func TestPostgresSkipsWithoutDSN(t *testing.T) {
	t.Setenv(LiveDSNEnv, "")
	ran := t.Run("live", func(t *testing.T) {
		Postgres(t)
		t.Error("Postgres returned without a DSN")
	})
	assert.True(t, ran)
}
