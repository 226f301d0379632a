package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pets-provider/internal/contract"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidName   = fmt.Errorf("%w: pet requires a name", ErrInvalidInput)
	ErrInvalidGender = fmt.Errorf("%w: pet requires valid gender", ErrInvalidInput)
	ErrInvalidWeight = fmt.Errorf("%w: pet requires valid weight", ErrInvalidInput)
	ErrInvalidSort   = fmt.Errorf("%w: unknown sort column", ErrInvalidInput)
	ErrNotFound      = errors.New("pet not found")
)

// Service es el único camino de escritura hacia la tabla pets.
// Acá se valida todo lo que el contrato declara (nombre, género, peso).
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name   string
	Breed  string
	Gender contract.Gender
	Weight int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		Name:   strings.TrimSpace(in.Name),
		Breed:  strings.TrimSpace(in.Breed),
		Gender: in.Gender,
		Weight: in.Weight,
	}
	if p.Name == "" {
		return Pet{}, ErrInvalidName
	}
	if !p.Gender.Valid() {
		return Pet{}, ErrInvalidGender
	}
	if p.Weight < 0 {
		return Pet{}, ErrInvalidWeight
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return Pet{}, fmt.Errorf("insert pet: %w", err)
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id < 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q Query) ([]Pet, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}
	return s.repo.Query(ctx, q)
}

// Update aplica el patch a las filas que matchean q.
// Solo se validan los campos presentes. Patch vacío => 0 filas, sin escribir.
func (s *Service) Update(ctx context.Context, q Query, patch Patch) (int, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return 0, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return 0, ErrInvalidName
		}
		patch.Name = &name
	}
	if patch.Breed != nil {
		breed := strings.TrimSpace(*patch.Breed)
		patch.Breed = &breed
	}
	if patch.Gender != nil && !patch.Gender.Valid() {
		return 0, ErrInvalidGender
	}
	if patch.Weight != nil && *patch.Weight < 0 {
		return 0, ErrInvalidWeight
	}

	if patch.Empty() {
		return 0, nil
	}

	n, err := s.repo.Update(ctx, q, patch)
	if err != nil {
		return 0, fmt.Errorf("update pets: %w", err)
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, q Query) (int, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return 0, err
	}
	n, err := s.repo.Delete(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("delete pets: %w", err)
	}
	return n, nil
}

func normalizeQuery(q Query) (Query, error) {
	q.Breed = strings.TrimSpace(q.Breed)
	q.SortBy = strings.TrimSpace(q.SortBy)
	if q.SortBy == "" {
		q.SortBy = contract.ID
	}
	if !contract.PetsTable().HasColumn(q.SortBy) {
		return Query{}, ErrInvalidSort
	}
	if q.Gender != nil && !q.Gender.Valid() {
		return Query{}, ErrInvalidGender
	}
	if q.Limit < 0 {
		return Query{}, ErrInvalidInput
	}
	return q, nil
}
