package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pets-provider/internal/contract"
	"pets-provider/internal/domain/pets"
)

// petRepo replica en memoria la tabla pets, incluido el CHECK de gender
// que tiene el esquema en Postgres.
type petRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		nextID: 1,
		byID:   make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	if !p.Gender.Valid() {
		return 0, pets.ErrInvalidGender
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Query(ctx context.Context, q pets.Query) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if matches(p, q) {
			out = append(out, p)
		}
	}

	sortPets(out, q.SortBy, q.Desc)

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *petRepo) Update(ctx context.Context, q pets.Query, patch pets.Patch) (int, error) {
	if patch.Gender != nil && !patch.Gender.Valid() {
		return 0, pets.ErrInvalidGender
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, p := range r.byID {
		if !matches(p, q) {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Breed != nil {
			p.Breed = *patch.Breed
		}
		if patch.Gender != nil {
			p.Gender = *patch.Gender
		}
		if patch.Weight != nil {
			p.Weight = *patch.Weight
		}
		r.byID[id] = p
		n++
	}
	return n, nil
}

func (r *petRepo) Delete(ctx context.Context, q pets.Query) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, p := range r.byID {
		if matches(p, q) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func matches(p pets.Pet, q pets.Query) bool {
	if q.ID != nil && p.ID != *q.ID {
		return false
	}
	if q.Gender != nil && p.Gender != *q.Gender {
		return false
	}
	if q.Breed != "" && !strings.EqualFold(p.Breed, q.Breed) {
		return false
	}
	return true
}

// Orden estable por columna del contrato; desempate por _id.
func sortPets(items []pets.Pet, sortBy string, desc bool) {
	less := func(a, b pets.Pet) bool {
		switch sortBy {
		case contract.ColumnPetName:
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case contract.ColumnPetBreed:
			if a.Breed != b.Breed {
				return a.Breed < b.Breed
			}
		case contract.ColumnPetGender:
			if a.Gender != b.Gender {
				return a.Gender < b.Gender
			}
		case contract.ColumnPetWeight:
			if a.Weight != b.Weight {
				return a.Weight < b.Weight
			}
		}
		return a.ID < b.ID
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
