// Package params parses the query parameters shared by the admin list
// endpoints.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/farafina/backoffice/internal/domain"
)

const dateLayout = "2006-01-02"

var ErrWindowOrder = errors.New("dateFrom is after dateTo")

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateLayout, value)
}

// Window reads dateFrom/dateTo. Date-only values are inclusive: dateTo
// is pushed to the last instant of that day.
func Window(r *http.Request) (domain.Window, error) {
	var w domain.Window

	if raw := r.URL.Query().Get("dateFrom"); raw != "" {
		from, err := parseDate(raw)
		if err != nil {
			return w, fmt.Errorf("invalid dateFrom: %q", raw)
		}
		w.From = &from
	}
	if raw := r.URL.Query().Get("dateTo"); raw != "" {
		to, err := parseDate(raw)
		if err != nil {
			return w, fmt.Errorf("invalid dateTo: %q", raw)
		}
		if len(raw) == len(dateLayout) {
			to = to.Add(24*time.Hour - time.Nanosecond)
		}
		w.To = &to
	}
	if !w.Valid() {
		return w, ErrWindowOrder
	}
	return w, nil
}

// Page reads page/limit with the given default page size. Page is
// 1-based.
func Page(r *http.Request, defaultLimit int) (domain.Pagination, error) {
	p := domain.Pagination{Page: 1, Limit: defaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, fmt.Errorf("invalid page: %q", raw)
		}
		p.Page = page
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return p, fmt.Errorf("invalid limit: %q", raw)
		}
		p.Limit = limit
	}
	return p, nil
}

// Meta assembles the pagination block for plain list endpoints.
func Meta(p domain.Pagination, total int) (page, limit, totalPages int, hasNext, hasPrev bool) {
	totalPages = (total + p.Limit - 1) / p.Limit
	return p.Page, p.Limit, totalPages, p.Page < totalPages, p.Page > 1 && total > 0
}
