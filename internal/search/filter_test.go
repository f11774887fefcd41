package search

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justsurfingit/jobboard/internal/database/dbtest"
	"github.com/justsurfingit/jobboard/internal/models"
)

func intPtr(v int) *int { return &v }

func names(preds []Predicate) []string {
	out := make([]string, 0, len(preds))
	for _, p := range preds {
		out = append(out, p.Name)
	}
	return out
}

func TestPredicatesEmptyFilterKeepsActiveGate(t *testing.T) {
	preds := Predicates(Filter{})
	require.Len(t, preds, 1)
	assert.Equal(t, Active(), preds[0])
}

func TestPredicatesOrderAndArgs(t *testing.T) {
	preds := Predicates(Filter{
		Search:          "engineer",
		Location:        "Berlin",
		Type:            "full-time",
		ExperienceLevel: "senior",
		SalaryMin:       intPtr(100000),
		SalaryMax:       intPtr(150000),
	})

	assert.Equal(t, []string{"active", "search", "location", "type", "experienceLevel", "salaryMin", "salaryMax"}, names(preds))
	assert.Equal(t, []any{"%engineer%", "%engineer%"}, preds[1].Args)
	assert.Equal(t, []any{"%Berlin%"}, preds[2].Args)
	assert.Equal(t, []any{"full-time"}, preds[3].Args)
	assert.Equal(t, []any{100000}, preds[5].Args)
	assert.Equal(t, "jobs.salary_max <= ?", preds[6].Clause)
}

func TestPredicatesIgnoreBlankStrings(t *testing.T) {
	preds := Predicates(Filter{Search: "   ", Location: "", Type: "\t"})
	assert.Equal(t, []string{"active"}, names(preds))
}

func TestPredicatesZeroSalaryIsAFilter(t *testing.T) {
	preds := Predicates(Filter{SalaryMin: intPtr(0)})
	assert.Equal(t, []string{"active", "salaryMin"}, names(preds))
}

func TestContainsPatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, `%100\%\_remote\\%`, containsPattern(`100%_remote\`))
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter(url.Values{
		"search":    {" go "},
		"type":      {"contract"},
		"salaryMin": {"50000"},
	})
	require.NoError(t, err)
	assert.Equal(t, "go", f.Search)
	assert.Equal(t, "contract", f.Type)
	require.NotNil(t, f.SalaryMin)
	assert.Equal(t, 50000, *f.SalaryMin)
	assert.Nil(t, f.SalaryMax)
}

func TestParseFilterRejectsMalformedSalary(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "1.5", "1e5", "NaN"} {
		_, err := ParseFilter(url.Values{"salaryMin": {raw}})
		assert.Truef(t, errors.Is(err, ErrInvalidFilter), "salaryMin=%q", raw)

		_, err = ParseFilter(url.Values{"salaryMax": {raw}})
		assert.Truef(t, errors.Is(err, ErrInvalidFilter), "salaryMax=%q", raw)
	}
}

func TestParsePaging(t *testing.T) {
	p, err := ParsePaging(url.Values{}, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Paging{Limit: 20, Offset: 0}, p)

	p, err = ParsePaging(url.Values{"limit": {"5"}, "offset": {"10"}}, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, Paging{Limit: 5, Offset: 10}, p)

	p, err = ParsePaging(url.Values{"limit": {"1000"}}, FeaturedLimit)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, p.Limit)

	for _, bad := range []url.Values{{"limit": {"0"}}, {"limit": {"x"}}, {"offset": {"-3"}}} {
		_, err := ParsePaging(bad, DefaultLimit)
		assert.ErrorIs(t, err, ErrInvalidFilter)
	}
}

func TestScopeRendersConjunctiveQuery(t *testing.T) {
	db := dbtest.DryRun(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var jobs []models.Job
		return tx.Model(&models.Job{}).Joins("Company").
			Scopes(Scope(Filter{Search: "eng", Type: "remote", SalaryMin: intPtr(100000)}, Paging{Limit: 10, Offset: 20})).
			Find(&jobs)
	})

	assert.Contains(t, sql, `LEFT JOIN "companies" "Company"`)
	assert.Contains(t, sql, "jobs.is_active = true")
	assert.Contains(t, sql, "(jobs.title ILIKE '%eng%' OR jobs.description ILIKE '%eng%')")
	assert.Contains(t, sql, "jobs.type = 'remote'")
	assert.Contains(t, sql, "jobs.salary_min >= 100000")
	assert.Contains(t, sql, "ORDER BY jobs.posted_at DESC, jobs.id DESC")
	assert.Contains(t, sql, "LIMIT 10")
	assert.Contains(t, sql, "OFFSET 20")
}

func TestScopeIsDeterministic(t *testing.T) {
	db := dbtest.DryRun(t)
	render := func() string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var jobs []models.Job
			return tx.Model(&models.Job{}).Scopes(Scope(Filter{Location: "remote"}, Paging{Limit: 20})).Find(&jobs)
		})
	}
	assert.Equal(t, render(), render())
}
