package viewstate

import (
	"slices"

	"github.com/quotevault/quotevault/internal/domain"
)

// dropQuote returns a copy of the list without the given quote. A list
// that does not contain it comes back unchanged.
func dropQuote(list []domain.Quote, quoteID string) []domain.Quote {
	return slices.DeleteFunc(slices.Clone(list), func(q domain.Quote) bool {
		return q.ID == quoteID
	})
}

// restoreQuote puts a removed quote back at its old position, clamped to
// the list's current length. A list that already contains the quote is
// returned as a plain copy: a fresh load brought it back first.
func restoreQuote(list []domain.Quote, quote domain.Quote, idx int) []domain.Quote {
	if slices.ContainsFunc(list, func(q domain.Quote) bool { return q.ID == quote.ID }) {
		return slices.Clone(list)
	}

	return slices.Insert(slices.Clone(list), min(idx, len(list)), quote)
}
