package viewstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/quotevault/quotevault/internal/domain"
)

// ErrFlowPhase reports a flow method called outside its legal phase.
var ErrFlowPhase = errors.New("add-to-collection flow: action not valid in current phase")

// FlowPhase is the phase of the add-to-collection flow.
type FlowPhase int

const (
	// PhaseBrowsing means no flow is active.
	PhaseBrowsing FlowPhase = iota

	// PhaseSelecting means the user is choosing a target collection for
	// a picked quote.
	PhaseSelecting

	// PhaseAddingToExisting means the add call against an existing
	// collection is in flight.
	PhaseAddingToExisting

	// PhaseCreatingNew means the create-and-add composite is in flight.
	PhaseCreatingNew

	// PhaseResolved means the flow finished and its outcome awaits
	// acknowledgement. The flow never closes silently.
	PhaseResolved
)

// String returns the phase name for logs.
func (p FlowPhase) String() string {
	switch p {
	case PhaseBrowsing:
		return "browsing"
	case PhaseSelecting:
		return "selecting"
	case PhaseAddingToExisting:
		return "adding_to_existing"
	case PhaseCreatingNew:
		return "creating_new"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// FlowResolution is the terminal outcome of a resolved flow.
type FlowResolution int

const (
	// ResolutionNone means the flow has not resolved.
	ResolutionNone FlowResolution = iota

	// ResolutionSuccess means the quote is in the target collection.
	ResolutionSuccess

	// ResolutionPartial means the collection was created but the quote
	// was not added.
	ResolutionPartial

	// ResolutionFailure means nothing changed.
	ResolutionFailure
)

// FlowSnapshot is the render-ready state of the flow.
type FlowSnapshot struct {
	Phase      FlowPhase
	QuoteID    string
	Choices    []domain.Collection
	Resolution FlowResolution
	Created    *domain.Collection
	Err        error
}

// AddToCollectionFlow drives adding one quote to a collection:
// Browsing, then Selecting a target, then either adding to an existing
// collection or creating a new one, then Resolved. A resolved flow must
// be acknowledged before the next one can start, so a partial outcome is
// never dropped on the floor.
type AddToCollectionFlow struct {
	collections CollectionService
	logger      *slog.Logger

	mu         sync.Mutex
	phase      FlowPhase
	quoteID    string
	choices    []domain.Collection
	resolution FlowResolution
	created    *domain.Collection
	err        error
}

// NewAddToCollectionFlow creates an idle flow.
func NewAddToCollectionFlow(collections CollectionService, logger *slog.Logger) *AddToCollectionFlow {
	if logger == nil {
		logger = slog.Default()
	}

	return &AddToCollectionFlow{
		collections: collections,
		logger:      logger.With(slog.String("component", "viewstate.AddToCollectionFlow")),
	}
}

// StartSelection picks the quote and loads the target choices. On a
// listing failure the flow returns to Browsing.
func (f *AddToCollectionFlow) StartSelection(ctx context.Context, quoteID string) error {
	f.mu.Lock()

	if f.phase != PhaseBrowsing {
		phase := f.phase
		f.mu.Unlock()

		return fmt.Errorf("%w: starting selection while %s", ErrFlowPhase, phase)
	}

	f.phase = PhaseSelecting
	f.quoteID = quoteID
	f.mu.Unlock()

	choices, err := f.collections.ListCollections(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseSelecting || f.quoteID != quoteID {
		return nil
	}

	if err != nil {
		f.phase = PhaseBrowsing
		f.quoteID = ""

		return fmt.Errorf("listing collection choices: %w", err)
	}

	f.choices = choices

	return nil
}

// AddToExisting adds the picked quote to an existing collection and
// resolves the flow.
func (f *AddToCollectionFlow) AddToExisting(ctx context.Context, collectionID string) error {
	quoteID, err := f.enterCall(PhaseAddingToExisting)
	if err != nil {
		return err
	}

	callErr := f.collections.AddQuoteToCollection(ctx, collectionID, quoteID)

	f.resolve(ctx, nil, callErr)

	if callErr != nil {
		return fmt.Errorf("adding quote to collection: %w", callErr)
	}

	return nil
}

// CreateAndAdd creates a new collection holding the picked quote and
// resolves the flow. A partial outcome (collection created, quote not
// added) resolves as ResolutionPartial with the created collection
// available on the snapshot.
func (f *AddToCollectionFlow) CreateAndAdd(ctx context.Context, name, description string) error {
	quoteID, err := f.enterCall(PhaseCreatingNew)
	if err != nil {
		return err
	}

	created, callErr := f.collections.CreateCollectionAndAddQuote(ctx, name, description, quoteID)

	f.resolve(ctx, created, callErr)

	if callErr != nil {
		return fmt.Errorf("creating collection with quote: %w", callErr)
	}

	return nil
}

// Cancel abandons an active selection. A flow with a call in flight or a
// pending resolution cannot be cancelled.
func (f *AddToCollectionFlow) Cancel() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.phase {
	case PhaseBrowsing:
		return nil
	case PhaseSelecting:
		f.reset()

		return nil
	default:
		return fmt.Errorf("%w: cancelling while %s", ErrFlowPhase, f.phase)
	}
}

// Acknowledge consumes a resolved outcome and returns the flow to
// Browsing.
func (f *AddToCollectionFlow) Acknowledge() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseResolved {
		return fmt.Errorf("%w: acknowledging while %s", ErrFlowPhase, f.phase)
	}

	f.reset()

	return nil
}

// Snapshot returns the current render-ready state.
func (f *AddToCollectionFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return FlowSnapshot{
		Phase:      f.phase,
		QuoteID:    f.quoteID,
		Choices:    slices.Clone(f.choices),
		Resolution: f.resolution,
		Created:    f.created,
		Err:        f.err,
	}
}

// enterCall moves Selecting into one of the in-flight phases.
func (f *AddToCollectionFlow) enterCall(phase FlowPhase) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseSelecting {
		return "", fmt.Errorf("%w: entering %s while %s", ErrFlowPhase, phase, f.phase)
	}

	f.phase = phase

	return f.quoteID, nil
}

// resolve records the terminal outcome of the in-flight call.
func (f *AddToCollectionFlow) resolve(ctx context.Context, created *domain.Collection, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.phase = PhaseResolved
	f.created = created
	f.err = err

	switch {
	case err == nil:
		f.resolution = ResolutionSuccess
	case domain.IsPartialSuccess(err):
		f.resolution = ResolutionPartial
		f.logger.WarnContext(ctx, "add-to-collection flow resolved partially",
			slog.String("quote_id", f.quoteID),
			slog.Any("error", err),
		)
	default:
		f.resolution = ResolutionFailure
	}
}

// reset returns the flow to the idle phase. Caller holds the lock.
func (f *AddToCollectionFlow) reset() {
	f.phase = PhaseBrowsing
	f.quoteID = ""
	f.choices = nil
	f.resolution = ResolutionNone
	f.created = nil
	f.err = nil
}
