package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pets-provider/internal/domain/changes"
)

type changeRepo struct {
	mu    sync.RWMutex
	items []changes.Change
}

func NewChangeRepo() changes.Repository {
	return &changeRepo{}
}

func (r *changeRepo) Create(ctx context.Context, c changes.Change) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("change id required")
	}
	r.items = append(r.items, c)
	return nil
}

func (r *changeRepo) List(ctx context.Context, filter changes.ListFilter) ([]changes.Change, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = changes.DefaultLimit
	}

	// Se recorre desde el final: a igual timestamp queda primero el último insertado.
	out := make([]changes.Change, 0)
	for i := len(r.items) - 1; i >= 0; i-- {
		c := r.items[i]
		if !filter.MatchesURI(c.URI) {
			continue
		}
		if filter.Since != nil && c.RecordedAt.Before(*filter.Since) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
