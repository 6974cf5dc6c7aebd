package app

import "github.com/quotevault/quotevault/internal/domain"

// applyFavoriteOverlay sets IsFavorite on each quote from the id set.
// A nil set marks everything unfavorited, which is the correct view for
// anonymous callers and the degraded view when the set could not be
// fetched.
func applyFavoriteOverlay(quotes []domain.Quote, favoriteIDs domain.QuoteIDSet) {
	for i := range quotes {
		quotes[i].IsFavorite = favoriteIDs.Contains(quotes[i].ID)
	}
}
