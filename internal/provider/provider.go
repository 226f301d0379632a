package provider

import (
	"context"
	"fmt"

	"pets-provider/internal/contract"
	"pets-provider/internal/domain/changes"
	"pets-provider/internal/domain/pets"
	"pets-provider/internal/platform/logger"
)

// Selection filtra/ordena operaciones sobre la colección.
// En URIs de fila se ignora (la fila ya está identificada por el id).
type Selection struct {
	Gender *contract.Gender
	Breed  string
	SortBy string
	Desc   bool
	Limit  int
}

type Options struct {
	Pets    *pets.Service
	Changes *changes.Service // opcional: sin feed persistido

	Notifier *Notifier // opcional: se crea uno
	Matcher  *Matcher  // opcional: NewPetsMatcher()
	Logger   logger.Logger
}

// Provider despacha operaciones por content URI hacia la tabla pets.
type Provider struct {
	matcher  *Matcher
	pets     *pets.Service
	changes  *changes.Service
	notifier *Notifier
	log      logger.Logger
}

func New(opts Options) *Provider {
	p := &Provider{
		matcher:  opts.Matcher,
		pets:     opts.Pets,
		changes:  opts.Changes,
		notifier: opts.Notifier,
		log:      opts.Logger,
	}
	if p.matcher == nil {
		p.matcher = NewPetsMatcher()
	}
	if p.notifier == nil {
		p.notifier = NewNotifier()
	}
	if p.log == nil {
		p.log = logger.Discard()
	}
	return p
}

func (p *Provider) Notifier() *Notifier { return p.notifier }

// Resolve expone el matcher (útil para CLI y handlers).
func (p *Provider) Resolve(uri string) (Match, error) {
	return p.matcher.Match(uri)
}

func (p *Provider) GetType(uri string) (string, error) {
	m, err := p.matcher.Match(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, uri)
	}
	typ := m.Type()
	if typ == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownURI, uri)
	}
	return typ, nil
}

func (p *Provider) Query(ctx context.Context, uri string, sel Selection) ([]pets.Pet, error) {
	m, err := p.matcher.Match(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, uri)
	}

	switch m.Code {
	case CodePets:
		return p.pets.List(ctx, toQuery(m, sel))
	case CodePetID:
		pet, err := p.pets.GetByID(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		return []pets.Pet{pet}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownURI, uri)
	}
}

// Insert solo está permitido sobre la colección. Devuelve la URI de la fila nueva.
func (p *Provider) Insert(ctx context.Context, uri string, in pets.CreateInput) (string, error) {
	m, err := p.matcher.Match(uri)
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, uri)
	}
	if m.Code != CodePets {
		return "", fmt.Errorf("%w: insert %s", ErrUnsupported, uri)
	}

	pet, err := p.pets.Create(ctx, in)
	if err != nil {
		return "", err
	}

	rowURI := contract.WithAppendedID(m.URI, pet.ID)
	p.notify(ctx, rowURI, changes.OpInsert, 1)
	return rowURI, nil
}

func (p *Provider) Update(ctx context.Context, uri string, patch pets.Patch, sel Selection) (int, error) {
	m, err := p.matcher.Match(uri)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, uri)
	}
	if m.Code != CodePets && m.Code != CodePetID {
		return 0, fmt.Errorf("%w: update %s", ErrUnsupported, uri)
	}

	n, err := p.pets.Update(ctx, toQuery(m, sel), patch)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		p.notify(ctx, m.URI, changes.OpUpdate, n)
	}
	return n, nil
}

func (p *Provider) Delete(ctx context.Context, uri string, sel Selection) (int, error) {
	m, err := p.matcher.Match(uri)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", err, uri)
	}
	if m.Code != CodePets && m.Code != CodePetID {
		return 0, fmt.Errorf("%w: delete %s", ErrUnsupported, uri)
	}

	n, err := p.pets.Delete(ctx, toQuery(m, sel))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		p.notify(ctx, m.URI, changes.OpDelete, n)
	}
	return n, nil
}

// notify registra el cambio (best-effort) y avisa a los observers.
// Un fallo del feed no revierte la mutación.
func (p *Provider) notify(ctx context.Context, uri string, op changes.Op, rows int) {
	c := changes.Change{URI: uri, Op: op, Rows: rows}

	if p.changes != nil {
		recorded, err := p.changes.Record(ctx, uri, op, rows)
		if err != nil {
			p.log.Warn("change feed record failed", map[string]any{
				"uri":   uri,
				"op":    string(op),
				"error": err.Error(),
			})
		} else {
			c = recorded
		}
	}

	p.log.Debug("content changed", map[string]any{"uri": uri, "op": string(op), "rows": rows})
	p.notifier.NotifyChange(c)
}

func toQuery(m Match, sel Selection) pets.Query {
	if m.Code == CodePetID {
		id := m.ID
		return pets.Query{ID: &id}
	}
	return pets.Query{
		Gender: sel.Gender,
		Breed:  sel.Breed,
		SortBy: sel.SortBy,
		Desc:   sel.Desc,
		Limit:  sel.Limit,
	}
}
