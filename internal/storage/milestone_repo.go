package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mfields/tally/internal/model"
)

// MilestoneRepo provides operations for Milestone entities.
type MilestoneRepo struct {
	db *DB
}

// NewMilestoneRepo creates a new milestone repository.
func NewMilestoneRepo(db *DB) *MilestoneRepo {
	return &MilestoneRepo{db: db}
}

// Record appends a milestone for a reached target.
func (r *MilestoneRepo) Record(target, count int, reachedAt time.Time) (*model.Milestone, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	m := model.NewMilestone(id.String(), target, count, reachedAt)
	if err := r.db.Set(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get retrieves a milestone by ID.
func (r *MilestoneRepo) Get(id string) (*model.Milestone, error) {
	m := &model.Milestone{}
	if err := r.db.Get(model.GenerateMilestoneKey(id), m); err != nil {
		return nil, err
	}
	return m, nil
}

// List retrieves all milestones, newest first.
func (r *MilestoneRepo) List() ([]*model.Milestone, error) {
	milestones, err := GetAllByPrefix(r.db, model.PrefixMilestone+":", func() *model.Milestone {
		return &model.Milestone{}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].ReachedAt.After(milestones[j].ReachedAt)
	})
	return milestones, nil
}

// ListSince retrieves milestones reached at or after the given time,
// newest first, up to limit (0 means no limit).
func (r *MilestoneRepo) ListSince(since time.Time, limit int) ([]*model.Milestone, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	var results []*model.Milestone
	for _, m := range all {
		if !since.IsZero() && m.ReachedAt.Before(since) {
			continue
		}
		results = append(results, m)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

// Delete removes a milestone by ID.
func (r *MilestoneRepo) Delete(id string) error {
	return r.db.Delete(model.GenerateMilestoneKey(id))
}
