package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pets-provider/internal/contract"
	"pets-provider/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

// Columnas en el orden en que las escanea scanPet.
var petColumns = strings.Join([]string{
	ident(contract.ID),
	ident(contract.ColumnPetName),
	ident(contract.ColumnPetBreed),
	ident(contract.ColumnPetGender),
	ident(contract.ColumnPetWeight),
}, ", ")

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	q := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		ident(contract.TableName),
		ident(contract.ColumnPetName),
		ident(contract.ColumnPetBreed),
		ident(contract.ColumnPetGender),
		ident(contract.ColumnPetWeight),
		ident(contract.ID),
	)

	var id int64
	err := r.db.QueryRowContext(ctx, q,
		p.Name,
		toNullString(p.Breed),
		int(p.Gender),
		p.Weight,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		petColumns, ident(contract.TableName), ident(contract.ID))

	p, err := scanPet(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Query(ctx context.Context, query pets.Query) ([]pets.Pet, error) {
	where, args := buildWhere(query, 1)

	sortBy := query.SortBy
	if !contract.PetsTable().HasColumn(sortBy) {
		sortBy = contract.ID
	}
	dir := "ASC"
	if query.Desc {
		dir = "DESC"
	}

	q := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s %s, %s ASC`,
		petColumns, ident(contract.TableName), where, ident(sortBy), dir, ident(contract.ID))
	if query.Limit > 0 {
		args = append(args, query.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Update(ctx context.Context, query pets.Query, patch pets.Patch) (int, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 8)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", ident(col), len(args)))
	}

	if patch.Name != nil {
		set(contract.ColumnPetName, *patch.Name)
	}
	if patch.Breed != nil {
		set(contract.ColumnPetBreed, toNullString(*patch.Breed))
	}
	if patch.Gender != nil {
		set(contract.ColumnPetGender, int(*patch.Gender))
	}
	if patch.Weight != nil {
		set(contract.ColumnPetWeight, *patch.Weight)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	where, whereArgs := buildWhere(query, len(args)+1)
	args = append(args, whereArgs...)

	q := fmt.Sprintf(`UPDATE %s SET %s%s`, ident(contract.TableName), strings.Join(sets, ", "), where)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *PetsRepo) Delete(ctx context.Context, query pets.Query) (int, error) {
	where, args := buildWhere(query, 1)

	res, err := r.db.ExecContext(ctx, `DELETE FROM `+ident(contract.TableName)+where, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// buildWhere arma " WHERE ..." con placeholders numerados desde start.
// Devuelve "" si la query no filtra nada.
func buildWhere(q pets.Query, start int) (string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	add := func(expr string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(expr, start+len(args)-1))
	}

	if q.ID != nil {
		add(ident(contract.ID)+" = $%d", *q.ID)
	}
	if q.Gender != nil {
		add(ident(contract.ColumnPetGender)+" = $%d", int(*q.Gender))
	}
	if q.Breed != "" {
		add("LOWER("+ident(contract.ColumnPetBreed)+") = LOWER($%d)", q.Breed)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var breed sql.NullString
	var gender int
	if err := row.Scan(&p.ID, &p.Name, &breed, &gender, &p.Weight); err != nil {
		return pets.Pet{}, err
	}
	p.Breed = breed.String
	p.Gender = contract.Gender(gender)
	return p, nil
}

// breed es opcional: vacío se guarda como NULL
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
