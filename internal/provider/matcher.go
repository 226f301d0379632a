package provider

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"pets-provider/internal/contract"
)

var (
	ErrUnknownURI  = errors.New("unknown uri")
	ErrUnsupported = errors.New("operation not supported for uri")
)

// Code identifica a qué patrón matcheó una URI.
type Code int

const (
	NoMatch   Code = -1
	CodePets  Code = 100 // colección pets
	CodePetID Code = 101 // una fila de pets
)

func (c Code) String() string {
	switch c {
	case CodePets:
		return "PETS"
	case CodePetID:
		return "PET_ID"
	default:
		return "NO_MATCH"
	}
}

// Match es el resultado de resolver una URI.
type Match struct {
	Code Code
	URI  string // forma canónica (sin barra final)
	ID   int64  // solo si el patrón tenía "#"
}

// Type devuelve el MIME type del contrato para el código ("" si no matcheó).
func (m Match) Type() string {
	switch m.Code {
	case CodePets:
		return contract.ContentListType
	case CodePetID:
		return contract.ContentItemType
	default:
		return ""
	}
}

type route struct {
	authority string
	segments  []string
	code      Code
}

// Matcher resuelve content URIs contra patrones registrados.
// En los patrones "#" matchea un número y "*" cualquier segmento.
// Se arma una vez al inicio; después es de solo lectura.
type Matcher struct {
	routes []route
}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// NewPetsMatcher registra las URIs del contrato:
// content://<authority>/pets y content://<authority>/pets/#.
func NewPetsMatcher() *Matcher {
	m := NewMatcher()
	m.AddURI(contract.ContentAuthority, contract.PathPets, CodePets)
	m.AddURI(contract.ContentAuthority, contract.PathPets+"/#", CodePetID)
	return m
}

func (m *Matcher) AddURI(authority, path string, code Code) {
	m.routes = append(m.routes, route{
		authority: authority,
		segments:  splitPath(path),
		code:      code,
	})
}

func (m *Matcher) Match(raw string) (Match, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Match{Code: NoMatch}, ErrUnknownURI
	}
	if u.Scheme != contract.Scheme || u.Host == "" {
		return Match{Code: NoMatch}, ErrUnknownURI
	}

	segs := splitPath(u.Path)

	for _, rt := range m.routes {
		if rt.authority != u.Host || len(rt.segments) != len(segs) {
			continue
		}

		match := Match{Code: rt.code}
		canon := make([]string, len(segs))
		ok := true
		for i, pat := range rt.segments {
			seg := segs[i]
			canon[i] = seg
			switch pat {
			case "#":
				// solo dígitos ASCII: "+5" y "-0" no son ids
				if !isDigits(seg) {
					ok = false
					break
				}
				id, err := strconv.ParseInt(seg, 10, 64)
				if err != nil {
					ok = false
					break
				}
				match.ID = id
				canon[i] = strconv.FormatInt(id, 10)
			case "*":
			default:
				if seg != pat {
					ok = false
				}
			}
			if !ok {
				break
			}
		}
		if !ok {
			continue
		}

		match.URI = contract.Scheme + "://" + u.Host
		for _, s := range canon {
			match.URI = contract.WithAppendedPath(match.URI, s)
		}
		return match, nil
	}

	return Match{Code: NoMatch}, ErrUnknownURI
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
