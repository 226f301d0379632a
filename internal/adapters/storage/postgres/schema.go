package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"pets-provider/internal/contract"
)

const tableChanges = "pet_changes"

const createChanges = `CREATE TABLE IF NOT EXISTS pet_changes (
    seq BIGSERIAL,
    id UUID PRIMARY KEY,
    uri TEXT NOT NULL,
    op TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL
);`

// Tablas creadas antes de agregar seq.
const addChangesSeq = `ALTER TABLE pet_changes ADD COLUMN IF NOT EXISTS seq BIGSERIAL;`

const createChangesIndex = `CREATE INDEX IF NOT EXISTS pet_changes_recorded_at_seq_idx ON pet_changes (recorded_at DESC, seq DESC);`

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		CreateTableSQL(contract.PetsTable()),
		createChanges,
		addChangesSeq,
		createChangesIndex,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// CreateTableSQL arma el DDL de Postgres a partir del esquema del contrato.
// La PK entera pasa a BIGSERIAL; gender lleva CHECK con el conjunto cerrado.
func CreateTableSQL(t contract.Table) string {
	checks := map[string]string{
		contract.ColumnPetGender: genderCheck(),
	}

	defs := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		var b strings.Builder
		b.WriteString(ident(c.Name))
		b.WriteString(" ")

		if c.PrimaryKey && c.Type == contract.TypeInteger {
			b.WriteString("BIGSERIAL PRIMARY KEY")
			defs = append(defs, b.String())
			continue
		}

		b.WriteString(string(c.Type))
		if c.PrimaryKey {
			b.WriteString(" PRIMARY KEY")
		}
		if c.NotNull {
			b.WriteString(" NOT NULL")
		}
		if c.Default != "" {
			b.WriteString(" DEFAULT " + c.Default)
		}
		if chk, ok := checks[c.Name]; ok {
			b.WriteString(" " + chk)
		}
		defs = append(defs, b.String())
	}

	return "CREATE TABLE IF NOT EXISTS " + ident(t.Name) + " (\n    " +
		strings.Join(defs, ",\n    ") + "\n);"
}

func genderCheck() string {
	codes := make([]string, 0, len(contract.Genders()))
	for _, g := range contract.Genders() {
		codes = append(codes, strconv.Itoa(int(g)))
	}
	return "CHECK (" + ident(contract.ColumnPetGender) + " IN (" + strings.Join(codes, ",") + "))"
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
