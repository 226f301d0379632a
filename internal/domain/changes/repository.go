package changes

import (
	"context"
	"strings"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c Change) error
	List(ctx context.Context, filter ListFilter) ([]Change, error)
}

type ListFilter struct {
	URIPrefix string // la URI y todo lo que cuelga de ella, por segmentos
	Since     *time.Time
	Limit     int
}

// URIBase devuelve URIPrefix sin barra final ("" = sin filtro).
func (f ListFilter) URIBase() string {
	return strings.TrimRight(strings.TrimSpace(f.URIPrefix), "/")
}

// MatchesURI: .../pets/1 incluye .../pets/1/x pero no .../pets/10.
func (f ListFilter) MatchesURI(uri string) bool {
	base := f.URIBase()
	if base == "" {
		return true
	}
	return uri == base || strings.HasPrefix(uri, base+"/")
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)
