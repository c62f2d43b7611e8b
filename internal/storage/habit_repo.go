package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type HabitRepo struct {
	store *Store
}

func NewHabitRepo(store *Store) *HabitRepo {
	return &HabitRepo{store: store}
}

func (r *HabitRepo) List(ctx context.Context) ([]Habit, error) {
	raw, err := r.store.Get(ctx, KeyHabits)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var out []Habit
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil
	}
	return out, nil
}

func (r *HabitRepo) Save(ctx context.Context, habits []Habit) error {
	raw, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("marshal habits: %w", err)
	}
	return r.store.Put(ctx, KeyHabits, raw)
}

func (r *HabitRepo) Get(ctx context.Context, id string) (*Habit, error) {
	habits, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			return &habits[i], nil
		}
	}
	return nil, nil
}

func (r *HabitRepo) Upsert(ctx context.Context, h Habit) error {
	habits, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range habits {
		if habits[i].ID == h.ID {
			habits[i] = h
			return r.Save(ctx, habits)
		}
	}
	return r.Save(ctx, append(habits, h))
}

func (r *HabitRepo) Delete(ctx context.Context, id string) error {
	habits, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return r.Save(ctx, kept)
}
