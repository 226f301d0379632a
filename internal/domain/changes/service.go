package changes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, uri string, op Op, rows int) (Change, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" || !op.Valid() || rows < 0 {
		return Change{}, ErrInvalidInput
	}

	c := Change{
		ID:         uuid.NewString(),
		URI:        uri,
		Op:         op,
		Rows:       rows,
		RecordedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Change{}, err
	}
	return c, nil
}

// List devuelve los cambios más recientes primero.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Change, error) {
	filter.URIPrefix = strings.TrimSpace(filter.URIPrefix)
	if filter.Limit < 0 {
		return nil, ErrInvalidInput
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return s.repo.List(ctx, filter)
}
