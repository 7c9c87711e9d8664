package catalog

import "skullfire.dev/internal/models"

// Query is the session state behind the gallery: the active category filter
// and the active search term. It belongs to the caller (one per visitor or
// request) and is passed by value into Catalog.Results. Start from NewQuery:
// the zero value filters on the empty category.
type Query struct {
	Category models.Category `json:"category"`
	Search   string          `json:"search"`
}

// NewQuery returns the initial state: every category, no search
func NewQuery() Query {
	return Query{Category: models.CategoryAll}
}

// SetFilter sets the category filter. Any value other than CategoryAll,
// including the empty string, matches only projects with exactly that
// category.
func (q *Query) SetFilter(category models.Category) {
	q.Category = category
}

// SetSearchTerm sets the search term verbatim; it is not trimmed
func (q *Query) SetSearchTerm(term string) {
	q.Search = term
}

// Reset returns the query to its initial state
func (q *Query) Reset() {
	*q = NewQuery()
}
