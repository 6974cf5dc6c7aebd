// Package domain contains core business entities and rules.
package domain

import "time"

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// Categories are the browsable catalog categories. CategoryAll comes
// first and is never stored on a quote record.
var Categories = []string{
	CategoryAll,
	"Motivation",
	"Love",
	"Success",
	"Wisdom",
	"Humor",
}

// Quote is a quotation stored in the remote catalog. Quote records are
// created and deleted by the backend only; the client treats them as
// immutable.
type Quote struct {
	// ID is the unique identifier for this quote.
	ID string

	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Category is the single category the quote belongs to.
	Category string

	// CreatedAt is when the backend created the record.
	CreatedAt time.Time

	// IsFavorite reports whether the current user has favorited this
	// quote. It is derived at read time by joining against the user's
	// favorite set and is never persisted on the quote record. It is
	// only as fresh as the last overlay.
	IsFavorite bool
}

// FavoriteMark is the relation marking a quote as a favorite of a user.
// Unique per (UserID, QuoteID).
type FavoriteMark struct {
	UserID    string
	QuoteID   string
	CreatedAt time.Time
}

// QuoteIDSet is the set of quote ids favorited by a user.
type QuoteIDSet map[string]struct{}

// Contains reports whether id is in the set.
func (s QuoteIDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id into the set.
func (s QuoteIDSet) Add(id string) {
	s[id] = struct{}{}
}

// Remove deletes id from the set.
func (s QuoteIDSet) Remove(id string) {
	delete(s, id)
}

// NewQuoteIDSet builds a set from the given ids.
func NewQuoteIDSet(ids ...string) QuoteIDSet {
	s := make(QuoteIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}
