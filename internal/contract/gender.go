package contract

import (
	"strconv"
	"strings"
)

// Gender es el código entero guardado en la columna gender.
type Gender int

// Valores posibles para el género de la mascota (conjunto cerrado).
const (
	GenderUnknown Gender = 0
	GenderMale    Gender = 1
	GenderFemale  Gender = 2
)

// Genders devuelve el conjunto completo de códigos válidos, en orden.
func Genders() []Gender {
	return []Gender{GenderUnknown, GenderMale, GenderFemale}
}

func (g Gender) Valid() bool {
	switch g {
	case GenderUnknown, GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	switch g {
	case GenderUnknown:
		return "unknown"
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "gender(" + strconv.Itoa(int(g)) + ")"
	}
}

// ParseGender acepta el nombre ("male") o el código ("1").
// Devuelve false si el valor no pertenece al conjunto.
func ParseGender(s string) (Gender, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, g := range Genders() {
		if s == g.String() {
			return g, true
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	g := Gender(n)
	if !g.Valid() {
		return 0, false
	}
	return g, true
}
