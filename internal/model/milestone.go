package model

import (
	"fmt"
	"time"
)

// Milestone records one reached-target event: the target that was hit,
// the count at the moment it was hit, and when. One is appended every
// time the counter crosses a target for the first time in an epoch.
type Milestone struct {
	Key       string    `json:"key"`
	ID        string    `json:"id"`
	Target    int       `json:"target"`
	Count     int       `json:"count"`
	ReachedAt time.Time `json:"reached_at"`
}

// SetKey sets the database key for this milestone.
func (m *Milestone) SetKey(key string) {
	m.Key = key
}

// GetKey returns the database key for this milestone.
func (m *Milestone) GetKey() string {
	return m.Key
}

// GenerateMilestoneKey generates a database key for a milestone.
// IDs are UUIDv7, so keys sort chronologically under the prefix.
func GenerateMilestoneKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixMilestone, id)
}

// NewMilestone creates a milestone for a reached target.
func NewMilestone(id string, target, count int, reachedAt time.Time) *Milestone {
	return &Milestone{
		Key:       GenerateMilestoneKey(id),
		ID:        id,
		Target:    target,
		Count:     count,
		ReachedAt: reachedAt,
	}
}
