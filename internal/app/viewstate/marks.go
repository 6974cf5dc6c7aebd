package viewstate

import (
	"slices"

	"github.com/quotevault/quotevault/internal/domain"
)

// favoriteMarks tracks the favorite flag of every quote a screen renders,
// one Mutation per quote id. The owning orchestrator's mutex guards all
// methods; none of them may be called while a remote call is in flight
// on the same goroutine.
type favoriteMarks struct {
	marks map[string]Mutation[bool]
}

func newFavoriteMarks() favoriteMarks {
	return favoriteMarks{marks: make(map[string]Mutation[bool])}
}

// reset replaces all marks with the confirmed flags of a fresh load.
func (f *favoriteMarks) reset(quotes []domain.Quote) {
	f.marks = make(map[string]Mutation[bool], len(quotes))
	f.seed(quotes)
}

// seed adds confirmed marks for newly loaded quotes, keeping existing
// marks (and any in-flight toggles on them) untouched.
func (f *favoriteMarks) seed(quotes []domain.Quote) {
	for i := range quotes {
		if _, ok := f.marks[quotes[i].ID]; !ok {
			f.marks[quotes[i].ID] = Confirmed(quotes[i].IsFavorite)
		}
	}
}

// begin starts an optimistic toggle and returns the target flag. The
// second return is false when the quote is not on screen.
func (f *favoriteMarks) begin(quoteID string) (bool, bool) {
	mark, ok := f.marks[quoteID]
	if !ok {
		return false, false
	}

	target := !mark.Value()
	f.marks[quoteID] = mark.Begin(target)

	return target, true
}

// resolve folds a completed toggle call into the mark. A mark dropped by
// an intervening reload is left alone.
func (f *favoriteMarks) resolve(quoteID string, target bool, err error) {
	mark, ok := f.marks[quoteID]
	if !ok {
		return
	}

	f.marks[quoteID] = mark.Resolve(target, err)
}

// acknowledge clears a failed toggle on the given quote.
func (f *favoriteMarks) acknowledge(quoteID string) {
	mark, ok := f.marks[quoteID]
	if !ok {
		return
	}

	f.marks[quoteID] = mark.Acknowledge()
}

// get returns the mark for a quote id.
func (f *favoriteMarks) get(quoteID string) (Mutation[bool], bool) {
	mark, ok := f.marks[quoteID]

	return mark, ok
}

// apply returns a copy of quotes with each IsFavorite flag replaced by
// the current mark value.
func (f *favoriteMarks) apply(quotes []domain.Quote) []domain.Quote {
	out := slices.Clone(quotes)
	for i := range out {
		if mark, ok := f.marks[out[i].ID]; ok {
			out[i].IsFavorite = mark.Value()
		}
	}

	return out
}
