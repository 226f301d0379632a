package pets

import "pets-provider/internal/contract"

// Pet es una fila de la tabla pets (ver contract.PetsTable).
type Pet struct {
	ID int64

	Name   string
	Breed  string // opcional
	Gender contract.Gender
	Weight int // kg, >= 0
}

// URI devuelve la content URI de la fila.
func (p Pet) URI() string {
	return contract.WithAppendedID(contract.PetsContentURI, p.ID)
}
