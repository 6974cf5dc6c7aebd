package domain

import "time"

// Collection is a user-owned, named grouping of quotes.
type Collection struct {
	// ID is the unique identifier for this collection.
	ID string

	// UserID is the owning user.
	UserID string

	// Name is free text, non-empty after trimming.
	Name string

	// Description is optional free text.
	Description string

	// CreatedAt is when the backend created the record.
	CreatedAt time.Time
}

// CollectionItem is the membership relation between a collection and a
// quote. Unique per (CollectionID, QuoteID).
type CollectionItem struct {
	CollectionID string
	QuoteID      string
	CreatedAt    time.Time
}

// CollectionWithQuotes pairs a collection with its hydrated member
// quotes. The quote count is len(Quotes) by definition; no denormalized
// counter exists that could drift. Items whose quote no longer resolves
// are dropped during hydration.
type CollectionWithQuotes struct {
	Collection Collection
	Quotes     []Quote
}
