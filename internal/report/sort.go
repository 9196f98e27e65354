package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownSortField reports a --sort-by value outside the closed field set.
var ErrUnknownSortField = errors.New("unknown sort field")

// SortField selects the table column rows are ordered by.
type SortField int

const (
	SortTicket SortField = iota
	SortSummary
	SortStatus
	SortInteracted
)

// ParseSortField resolves a case-insensitive field name to its SortField.
func ParseSortField(name string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ticket":
		return SortTicket, nil
	case "summary":
		return SortSummary, nil
	case "status":
		return SortStatus, nil
	case "interacted":
		return SortInteracted, nil
	}
	return 0, fmt.Errorf("%w %q, valid fields: ticket, summary, status, interacted", ErrUnknownSortField, name)
}

// String returns the lowercase field name.
func (f SortField) String() string {
	switch f {
	case SortSummary:
		return "summary"
	case SortStatus:
		return "status"
	case SortInteracted:
		return "interacted"
	default:
		return "ticket"
	}
}

// column returns the row value the field sorts on.
func (f SortField) column(r Row) string {
	switch f {
	case SortSummary:
		return r.Summary
	case SortStatus:
		return r.Status
	case SortInteracted:
		return r.Interacted
	default:
		return r.Ticket
	}
}

// SortRows orders rows ascending by field using byte-wise, case-sensitive
// string comparison. The sort is stable, so rows with equal keys keep the
// order the fetch returned them in.
func SortRows(rows []Row, field SortField) {
	sort.SliceStable(rows, func(i, j int) bool {
		return field.column(rows[i]) < field.column(rows[j])
	})
}
