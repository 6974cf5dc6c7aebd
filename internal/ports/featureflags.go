package ports

import (
	"context"
	"sync"
)

// FeatureFlags defines the contract for feature flag evaluation.
// The application checks flag enablement without knowing the underlying
// provider; today the only provider is configuration-backed.
//
// Always provide a default value for graceful degradation:
//
//	if flags.IsEnabled(ctx, "catalog.server_side_random", true) {
//	    return s.store.PickRandom(ctx)
//	}
type FeatureFlags interface {
	// IsEnabled checks if a boolean feature flag is enabled.
	// Returns defaultValue if the flag doesn't exist or evaluation fails.
	IsEnabled(ctx context.Context, flag string, defaultValue bool) bool
}

// StaticFlags is a FeatureFlags implementation backed by a fixed map,
// typically populated from configuration at startup.
type StaticFlags struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewStaticFlags creates a flag provider from the given values.
func NewStaticFlags(flags map[string]bool) *StaticFlags {
	copied := make(map[string]bool, len(flags))
	for k, v := range flags {
		copied[k] = v
	}

	return &StaticFlags{flags: copied}
}

// IsEnabled implements FeatureFlags.
func (f *StaticFlags) IsEnabled(_ context.Context, flag string, defaultValue bool) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if v, ok := f.flags[flag]; ok {
		return v
	}

	return defaultValue
}

// Set updates a flag value. Intended for tests and runtime toggles.
func (f *StaticFlags) Set(flag string, value bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.flags == nil {
		f.flags = make(map[string]bool)
	}

	f.flags[flag] = value
}
