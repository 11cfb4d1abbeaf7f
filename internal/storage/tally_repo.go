package storage

import (
	"encoding/json"

	"github.com/mfields/tally/internal/model"
)

// TallyRepo owns the two single-value slots that make up the counter
// state: "count" holds a JSON-encoded integer, "target" holds a
// JSON-encoded integer or null (no target). Each write carries the
// full current value, so concurrent completions converge on the last
// writer.
type TallyRepo struct {
	db *DB
}

// NewTallyRepo creates a new tally repository.
func NewTallyRepo(db *DB) *TallyRepo {
	return &TallyRepo{db: db}
}

// LoadCount reads the persisted count. A missing slot defaults to 0.
func (r *TallyRepo) LoadCount() (int, error) {
	return r.loadInt(model.KeyCount, 0)
}

// SaveCount writes the full current count.
func (r *TallyRepo) SaveCount(count int) error {
	data, err := json.Marshal(count)
	if err != nil {
		return err
	}
	return r.db.SetBytes(model.KeyCount, data)
}

// LoadTarget reads the persisted target. A missing slot or a stored
// null both mean "no target" and are reported as 0.
func (r *TallyRepo) LoadTarget() (int, error) {
	return r.loadInt(model.KeyTarget, 0)
}

// SaveTarget writes the target. A target of 0 (unset) is stored as
// JSON null, matching the slot contract.
func (r *TallyRepo) SaveTarget(target int) error {
	var data []byte
	var err error
	if target == 0 {
		data = []byte("null")
	} else {
		data, err = json.Marshal(target)
		if err != nil {
			return err
		}
	}
	return r.db.SetBytes(model.KeyTarget, data)
}

// loadInt reads a JSON integer slot, tolerating null and absence.
func (r *TallyRepo) loadInt(key string, fallback int) (int, error) {
	data, err := r.db.GetBytes(key)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return fallback, nil
		}
		return fallback, err
	}

	// A stored null decodes into the untouched fallback.
	value := fallback
	if err := json.Unmarshal(data, &value); err != nil {
		return fallback, err
	}
	return value, nil
}
