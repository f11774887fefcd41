// Package search turns job listing filters into GORM query scopes.
//
// Every filter dimension maps to one Predicate. Predicates are combined with
// AND; the only OR lives inside the free-text search predicate. The active-only
// predicate is always first and cannot be removed by callers.
package search

import (
	"strings"

	"gorm.io/gorm"
)

const (
	// DefaultLimit is the page size of the job listing.
	DefaultLimit = 20
	// FeaturedLimit is the page size of the featured jobs strip.
	FeaturedLimit = 6
	// MaxLimit caps any requested page size.
	MaxLimit = 100
)

// NewestFirst orders jobs by posting time, id breaking ties so pages are stable.
const NewestFirst = "jobs.posted_at DESC, jobs.id DESC"

// Filter is the set of optional constraints of a job listing query.
// Blank strings and nil pointers mean "not filtered".
type Filter struct {
	Search          string
	Location        string
	Type            string
	ExperienceLevel string
	SalaryMin       *int
	SalaryMax       *int
}

// Paging bounds a listing.
type Paging struct {
	Limit  int
	Offset int
}

// Normalize fills in the default limit and clamps out-of-range values.
func (p Paging) Normalize(defaultLimit int) Paging {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Predicate is a single WHERE condition over the jobs table.
type Predicate struct {
	Name   string
	Clause string
	Args   []any
}

// Scope applies the predicate to a query.
func (p Predicate) Scope(db *gorm.DB) *gorm.DB {
	return db.Where(p.Clause, p.Args...)
}

// Active is the soft-delete gate applied to every job read.
func Active() Predicate {
	return Predicate{Name: "active", Clause: "jobs.is_active = ?", Args: []any{true}}
}

// Predicates maps f to its ordered list of conditions. The result always starts
// with Active and never depends on anything but f.
func Predicates(f Filter) []Predicate {
	preds := []Predicate{Active()}

	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := containsPattern(term)
		preds = append(preds, Predicate{
			Name:   "search",
			Clause: "(jobs.title ILIKE ? OR jobs.description ILIKE ?)",
			Args:   []any{pattern, pattern},
		})
	}
	if location := strings.TrimSpace(f.Location); location != "" {
		preds = append(preds, Predicate{
			Name:   "location",
			Clause: "jobs.location ILIKE ?",
			Args:   []any{containsPattern(location)},
		})
	}
	if jobType := strings.TrimSpace(f.Type); jobType != "" {
		preds = append(preds, Predicate{Name: "type", Clause: "jobs.type = ?", Args: []any{jobType}})
	}
	if level := strings.TrimSpace(f.ExperienceLevel); level != "" {
		preds = append(preds, Predicate{Name: "experienceLevel", Clause: "jobs.experience_level = ?", Args: []any{level}})
	}
	// NULL salary bounds never satisfy a comparison, so those rows drop out.
	if f.SalaryMin != nil {
		preds = append(preds, Predicate{Name: "salaryMin", Clause: "jobs.salary_min >= ?", Args: []any{*f.SalaryMin}})
	}
	if f.SalaryMax != nil {
		preds = append(preds, Predicate{Name: "salaryMax", Clause: "jobs.salary_max <= ?", Args: []any{*f.SalaryMax}})
	}

	return preds
}

// Scope returns a GORM scope applying every predicate of f, newest-first
// ordering, then paging.
func Scope(f Filter, p Paging) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, pred := range Predicates(f) {
			db = pred.Scope(db)
		}
		return db.Order(NewestFirst).Limit(p.Limit).Offset(p.Offset)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term anywhere, with LIKE
// wildcards in term taken literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
