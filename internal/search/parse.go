package search

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidFilter reports a query string value that could not be coerced.
var ErrInvalidFilter = errors.New("invalid filter")

// ParseFilter reads the job filter fields from a query string. Salary bounds
// must be non-negative whole numbers; anything else is rejected rather than
// silently matching nothing.
func ParseFilter(values url.Values) (Filter, error) {
	f := Filter{
		Search:          strings.TrimSpace(values.Get("search")),
		Location:        strings.TrimSpace(values.Get("location")),
		Type:            strings.TrimSpace(values.Get("type")),
		ExperienceLevel: strings.TrimSpace(values.Get("experienceLevel")),
	}

	var err error
	if f.SalaryMin, err = optionalAmount(values, "salaryMin"); err != nil {
		return Filter{}, err
	}
	if f.SalaryMax, err = optionalAmount(values, "salaryMax"); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// ParsePaging reads limit and offset. A missing limit becomes defaultLimit and
// limits above MaxLimit are clamped.
func ParsePaging(values url.Values, defaultLimit int) (Paging, error) {
	p := Paging{Limit: defaultLimit}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Paging{}, fmt.Errorf("%w: limit must be a positive whole number", ErrInvalidFilter)
		}
		p.Limit = limit
	}
	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Paging{}, fmt.Errorf("%w: offset must be a non-negative whole number", ErrInvalidFilter)
		}
		p.Offset = offset
	}

	return p.Normalize(defaultLimit), nil
}

func optionalAmount(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	amount, err := strconv.Atoi(raw)
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative whole number", ErrInvalidFilter, key)
	}
	return &amount, nil
}
