package pets

import (
	"context"

	"pets-provider/internal/contract"
)

type Repository interface {
	Insert(ctx context.Context, p Pet) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Query(ctx context.Context, q Query) ([]Pet, error)
	Update(ctx context.Context, q Query, patch Patch) (int, error)
	Delete(ctx context.Context, q Query) (int, error)
}

// Query selecciona filas. Campos vacíos = sin filtro.
type Query struct {
	ID     *int64
	Gender *contract.Gender
	Breed  string

	SortBy string // columna del contrato; default _id
	Desc   bool
	Limit  int // 0 = sin límite
}

// Patch para UPDATE: nil = no tocar.
type Patch struct {
	Name   *string
	Breed  *string
	Gender *contract.Gender
	Weight *int
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Breed == nil && p.Gender == nil && p.Weight == nil
}
