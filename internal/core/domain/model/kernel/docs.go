// Package kernel contains shared value objects used across the domain model.
//
// The central type is OrderID, the human-readable order identifier built from
// a six-digit date prefix and a fixed-width sequence suffix. Identifiers are
// allocated from a per-day atomic counter; the kernel only encodes and
// validates them, allocation lives in the sequence repository.
package kernel
