// Package model defines the domain models for tally.
package model

// Model is the interface that all database models must implement.
type Model interface {
	// SetKey sets the database key for this model.
	SetKey(key string)
	// GetKey returns the database key for this model.
	GetKey() string
}

// Database key constants.
//
// KeyCount and KeyTarget are fixed single-value slots holding a
// JSON-encoded integer (or null for an unset target). Milestones are
// stored one per key under PrefixMilestone.
const (
	KeyCount        = "count"
	KeyTarget       = "target"
	PrefixMilestone = "milestone"
)
