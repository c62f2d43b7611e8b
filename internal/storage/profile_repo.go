package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type ProfileRepo struct {
	store *Store
}

func NewProfileRepo(store *Store) *ProfileRepo {
	return &ProfileRepo{store: store}
}

// Get returns the persisted profile, or nil when no profile exists.
// A corrupt blob is treated as absent rather than failing the load.
func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	raw, err := r.store.Get(ctx, KeyProfile)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// Put overwrites the persisted profile.
func (r *ProfileRepo) Put(ctx context.Context, p *Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return r.store.Put(ctx, KeyProfile, raw)
}

// Delete removes the persisted profile.
func (r *ProfileRepo) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, KeyProfile)
}
