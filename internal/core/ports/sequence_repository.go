package ports

import "context"

// SequenceRepository allocates order identifier suffixes from per-day
// counters. Next must be atomic at the storage layer: read-increment-create
// in one step, so concurrent placements on the same day can never observe
// the same value.
type SequenceRepository interface {
	// Next increments and returns the counter for the given day key
	// ("YYMMDD"), creating the counter at 1 on first use of the day.
	// The returned value may exceed the identifier suffix width; the caller
	// is responsible for surfacing exhaustion.
	Next(ctx context.Context, day string) (int64, error)
}
