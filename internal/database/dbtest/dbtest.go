// Package dbtest builds GORM handles for tests: dry-run handles that render SQL
// without a database, and live handles on a throwaway postgres schema.
package dbtest

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dsn = "host=localhost user=test password=test dbname=test port=5432 sslmode=disable"

// DryRun returns a postgres-dialect handle that never executes statements.
// Reads come back empty and creates run hooks and timestamps only.
func DryRun(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

// LiveDSNEnv names the variable holding the postgres DSN for live tests.
const LiveDSNEnv = "TEST_DATABASE_URL"

// Postgres opens the database named by TEST_DATABASE_URL inside a fresh schema
// that is dropped when the test ends. The test is skipped when the variable is
// unset.
func Postgres(t testing.TB) *gorm.DB {
	t.Helper()
	base := os.Getenv(LiveDSNEnv)
	if base == "" {
		t.Skipf("%s not set", LiveDSNEnv)
	}
	silent := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	admin, err := gorm.Open(postgres.Open(base), silent)
	if err != nil {
		t.Fatalf("open %s: %v", LiveDSNEnv, err)
	}
	schema := "jobboard_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if err := admin.Exec("CREATE SCHEMA " + schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}

	db, err := gorm.Open(postgres.Open(withSearchPath(base, schema)), silent)
	if err != nil {
		t.Fatalf("open schema %s: %v", schema, err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		if err := admin.Exec("DROP SCHEMA " + schema + " CASCADE").Error; err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
		if sqlDB, err := admin.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// withSearchPath adds a search_path runtime parameter to a URL or
// keyword/value DSN.
func withSearchPath(dsn, schema string) string {
	if u, err := url.Parse(dsn); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		q := u.Query()
		q.Set("search_path", schema)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return fmt.Sprintf("%s search_path=%s", dsn, schema)
}

// Recorder collects the SQL, with bound values inlined, of every statement
// issued through a handle.
type Recorder struct {
	mu         sync.Mutex
	statements []string
}

// Record attaches a Recorder to db.
func Record(t testing.TB, db *gorm.DB) *Recorder {
	t.Helper()
	r := &Recorder{}
	hook := func(tx *gorm.DB) {
		if tx.Statement.SQL.Len() == 0 {
			return
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		r.statements = append(r.statements, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	}

	cb := db.Callback()
	for _, err := range []error{
		cb.Query().After("gorm:query").Register("dbtest:record_query", hook),
		cb.Create().After("gorm:create").Register("dbtest:record_create", hook),
		cb.Update().After("gorm:update").Register("dbtest:record_update", hook),
	} {
		if err != nil {
			t.Fatalf("register recorder: %v", err)
		}
	}
	return r
}

// Statements returns the recorded SQL in issue order.
func (r *Recorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.statements...)
}

// Last returns the most recent statement, or "" when none was issued.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statements) == 0 {
		return ""
	}
	return r.statements[len(r.statements)-1]
}
