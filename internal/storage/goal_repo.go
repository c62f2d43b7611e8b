package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type GoalRepo struct {
	store *Store
}

func NewGoalRepo(store *Store) *GoalRepo {
	return &GoalRepo{store: store}
}

// List returns all goals. An absent or corrupt blob yields an empty list.
func (r *GoalRepo) List(ctx context.Context) ([]Goal, error) {
	raw, err := r.store.Get(ctx, KeyGoals)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var out []Goal
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil
	}
	return out, nil
}

// Save replaces the whole goal list.
func (r *GoalRepo) Save(ctx context.Context, goals []Goal) error {
	raw, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	return r.store.Put(ctx, KeyGoals, raw)
}

// Get returns the goal with the given id, or nil if not present.
func (r *GoalRepo) Get(ctx context.Context, id string) (*Goal, error) {
	goals, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].ID == id {
			return &goals[i], nil
		}
	}
	return nil, nil
}

// Upsert inserts the goal, or replaces the stored goal with the same id.
func (r *GoalRepo) Upsert(ctx context.Context, g Goal) error {
	goals, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == g.ID {
			goals[i] = g
			return r.Save(ctx, goals)
		}
	}
	return r.Save(ctx, append(goals, g))
}

// Delete removes the goal with the given id. Unknown ids are a no-op.
func (r *GoalRepo) Delete(ctx context.Context, id string) error {
	goals, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := goals[:0]
	for _, g := range goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	return r.Save(ctx, kept)
}
