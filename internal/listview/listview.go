// Package listview holds the pure in-memory search and sort applied to a
// fetched booking list for display. Neither operation mutates its input.
package listview

import (
	"sort"
	"strings"

	"appointment-booking-service/internal/domain/entity"
)

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByName      SortField = "name"
	SortByDate      SortField = "date"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortField maps a query-string value to a supported sort field.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByCreatedAt, SortByName, SortByDate:
		return SortField(s), true
	}
	return "", false
}

func ParseDirection(s string) Direction {
	if Direction(s) == Descending {
		return Descending
	}
	return Ascending
}

// Filter keeps records where the lowercased term is a substring of the
// lowercased name, email, date or time slot, or where the term as given
// is a substring of the phone digits. An empty term keeps everything.
func Filter(records []entity.Booking, term string) []entity.Booking {
	term = strings.TrimSpace(term)
	if term == "" {
		return append([]entity.Booking(nil), records...)
	}

	lower := strings.ToLower(term)
	out := make([]entity.Booking, 0, len(records))
	for _, b := range records {
		if strings.Contains(strings.ToLower(b.Name), lower) ||
			strings.Contains(strings.ToLower(b.Email), lower) ||
			strings.Contains(strings.ToLower(b.Date), lower) ||
			strings.Contains(strings.ToLower(b.TimeSlot), lower) ||
			strings.Contains(b.Phone, term) {
			out = append(out, b)
		}
	}
	return out
}

// Sort returns a new slice ordered by the given field and direction.
// Ties keep their relative order from the input list, so the sort must
// stay stable.
func Sort(records []entity.Booking, field SortField, dir Direction) []entity.Booking {
	out := append([]entity.Booking(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(&out[i], &out[j], field)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b *entity.Booking, field SortField) int {
	switch field {
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByDate:
		return strings.Compare(strings.ToLower(a.Date), strings.ToLower(b.Date))
	default:
		switch {
		case a.CreatedAt.Before(b.CreatedAt):
			return -1
		case a.CreatedAt.After(b.CreatedAt):
			return 1
		default:
			return 0
		}
	}
}
