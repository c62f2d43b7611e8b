package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type QuoteRepo struct {
	store *Store
}

func NewQuoteRepo(store *Store) *QuoteRepo {
	return &QuoteRepo{store: store}
}

func (r *QuoteRepo) List(ctx context.Context) ([]Quote, error) {
	raw, err := r.store.Get(ctx, KeyQuotes)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var out []Quote
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, nil
	}
	return out, nil
}

func (r *QuoteRepo) Save(ctx context.Context, quotes []Quote) error {
	raw, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("marshal quotes: %w", err)
	}
	return r.store.Put(ctx, KeyQuotes, raw)
}

func (r *QuoteRepo) Append(ctx context.Context, q Quote) error {
	quotes, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(quotes, q))
}

func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	quotes, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	return r.Save(ctx, kept)
}
