package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pets-provider/internal/domain/changes"
)

type ChangesRepo struct {
	db *sql.DB
}

func NewChangesRepo(db *sql.DB) *ChangesRepo {
	return &ChangesRepo{db: db}
}

func (r *ChangesRepo) Create(ctx context.Context, c changes.Change) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO `+tableChanges+` (id, uri, op, row_count, recorded_at)
		VALUES ($1, $2, $3, $4, $5)
	`,
		c.ID,
		c.URI,
		string(c.Op),
		c.Rows,
		c.RecordedAt,
	)
	return err
}

func (r *ChangesRepo) List(ctx context.Context, filter changes.ListFilter) ([]changes.Change, error) {
	q, args := listChangesSQL(filter)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]changes.Change, 0)
	for rows.Next() {
		var c changes.Change
		var op string
		if err := rows.Scan(&c.ID, &c.URI, &op, &c.Rows, &c.RecordedAt); err != nil {
			return nil, err
		}
		c.Op = changes.Op(op)
		out = append(out, c)
	}
	return out, rows.Err()
}

// listChangesSQL arma el SELECT del feed. El filtro de URI es por segmentos:
// la URI exacta o lo que cuelga de ella con "/". Empates de recorded_at por seq.
func listChangesSQL(filter changes.ListFilter) (string, []any) {
	limit := filter.Limit
	if limit <= 0 {
		limit = changes.DefaultLimit
	}

	conds := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if base := filter.URIBase(); base != "" {
		// prefijo literal: se escapan los comodines de LIKE
		args = append(args, base, escapeLike(base)+"/%")
		conds = append(conds, fmt.Sprintf(`(uri = $%d OR uri LIKE $%d ESCAPE '\')`, len(args)-1, len(args)))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		conds = append(conds, fmt.Sprintf("recorded_at >= $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, limit)
	q := fmt.Sprintf(`SELECT id, uri, op, row_count, recorded_at FROM %s%s ORDER BY recorded_at DESC, seq DESC LIMIT $%d`,
		tableChanges, where, len(args))
	return q, args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
