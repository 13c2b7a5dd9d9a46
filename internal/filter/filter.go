// Package filter translates declarative filter descriptors into query
// predicates. Each repository declares an ordered composition table mapping
// field names to predicate builders; fields without an entry are silently
// ignored so stale or forward-compatible query parameters never fail a request.
package filter

import (
	"strings"

	"gorm.io/gorm"
)

// Descriptor is a {field, value} pair supplied by the caller to narrow a query.
type Descriptor struct {
	Field string
	Value any
}

// Handler narrows a query with one field's predicate.
type Handler func(q *gorm.DB, value any) *gorm.DB

// Entry binds a filterable field name to its predicate builder.
type Entry struct {
	Field string
	Apply Handler
}

// Map is an ordered composition table of filterable fields. Repositories build
// one from Base plus their own entries; later entries shadow earlier ones.
type Map []Entry

// Handler returns the last registered handler for field.
func (m Map) Handler(field string) (Handler, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Field == field {
			return m[i].Apply, true
		}
	}
	return nil, false
}

// Has reports whether the descriptor list carries the given field.
func Has(filters []Descriptor, field string) bool {
	for _, f := range filters {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Apply narrows q with every descriptor that has a handler in m, in caller
// order. Unknown fields are no-ops.
func Apply(q *gorm.DB, m Map, filters []Descriptor) *gorm.DB {
	for _, f := range filters {
		if h, ok := m.Handler(f.Field); ok {
			q = h(q, f.Value)
		}
	}
	return q
}

// ApplyOrder adds an ORDER BY clause for orderBy, where a "-" prefix selects
// descending order. Fields outside the allow-list are ignored, leaving the
// storage engine's default order.
func ApplyOrder(q *gorm.DB, orderBy string, orderable []string) *gorm.DB {
	if orderBy == "" {
		return q
	}
	field := orderBy
	desc := false
	if strings.HasPrefix(orderBy, "-") {
		field = orderBy[1:]
		desc = true
	}
	for _, allowed := range orderable {
		if field == allowed {
			if desc {
				return q.Order(field + " DESC")
			}
			return q.Order(field)
		}
	}
	return q
}

// Equals builds a plain equality predicate on column.
func Equals(column string) Handler {
	return func(q *gorm.DB, v any) *gorm.DB {
		return q.Where(column+" = ?", v)
	}
}

// EqualsFold builds a case-insensitive equality predicate on column.
func EqualsFold(column string) Handler {
	return func(q *gorm.DB, v any) *gorm.DB {
		return q.Where("LOWER("+column+") = LOWER(?)", v)
	}
}

// In builds a set-membership predicate on column.
func In(column string) Handler {
	return func(q *gorm.DB, v any) *gorm.DB {
		return q.Where(column+" IN ?", v)
	}
}

// EqualsOrIn matches one value or any of a set, depending on whether the
// caller supplied a scalar or a slice.
func EqualsOrIn(column string) Handler {
	return func(q *gorm.DB, v any) *gorm.DB {
		if _, ok := v.([]string); ok {
			return In(column)(q, v)
		}
		return Equals(column)(q, v)
	}
}

// Base is the filter set shared by every repository. is_deleted is reserved:
// when a soft-deletable repository receives no is_deleted descriptor it
// injects {is_deleted, false} itself.
func Base() Map {
	return Map{
		{Field: "id", Apply: Equals("id")},
		{Field: "is_deleted", Apply: Equals("is_deleted")},
	}
}
