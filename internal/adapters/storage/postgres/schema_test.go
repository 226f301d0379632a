package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"pets-provider/internal/contract"
	"pets-provider/internal/domain/changes"
	"pets-provider/internal/domain/pets"
)

func TestCreateTableSQL_Pets(t *testing.T) {
	got := CreateTableSQL(contract.PetsTable())

	want := []string{
		`CREATE TABLE IF NOT EXISTS "pets" (`,
		`"_id" BIGSERIAL PRIMARY KEY`,
		`"name" TEXT NOT NULL`,
		`"breed" TEXT,`,
		`"gender" INTEGER NOT NULL DEFAULT 0 CHECK ("gender" IN (0,1,2))`,
		`"weight" INTEGER NOT NULL DEFAULT 0`,
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Fatalf("expected DDL to contain %q, got:\n%s", w, got)
		}
	}
}

func TestBuildWhere(t *testing.T) {
	where, args := buildWhere(pets.Query{}, 1)
	if where != "" || len(args) != 0 {
		t.Fatalf("expected empty where, got %q %v", where, args)
	}

	id := int64(3)
	g := contract.GenderFemale
	where, args = buildWhere(pets.Query{ID: &id, Gender: &g, Breed: "pug"}, 2)
	want := ` WHERE "_id" = $2 AND "gender" = $3 AND LOWER("breed") = LOWER($4)`
	if where != want {
		t.Fatalf("unexpected where:\n got %q\nwant %q", where, want)
	}
	if len(args) != 3 || args[0] != int64(3) || args[1] != 2 || args[2] != "pug" {
		t.Fatalf("unexpected args %#v", args)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`content://a/pets_1%`); got != `content://a/pets\_1\%` {
		t.Fatalf("unexpected escape %q", got)
	}
}

func TestListChangesSQL_SegmentAwareURIFilter(t *testing.T) {
	q, args := listChangesSQL(changes.ListFilter{URIPrefix: "content://com.example.android.pets/pets_1/"})

	if !strings.Contains(q, `(uri = $1 OR uri LIKE $2 ESCAPE '\')`) {
		t.Fatalf("expected exact-or-descendant uri filter, got %s", q)
	}
	if !strings.Contains(q, "ORDER BY recorded_at DESC, seq DESC LIMIT $3") {
		t.Fatalf("expected seq tiebreak and limit placeholder, got %s", q)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[0] != "content://com.example.android.pets/pets_1" {
		t.Fatalf("unexpected exact arg %v", args[0])
	}
	if args[1] != `content://com.example.android.pets/pets\_1/%` {
		t.Fatalf("unexpected like arg %v", args[1])
	}
	if args[2] != changes.DefaultLimit {
		t.Fatalf("expected default limit, got %v", args[2])
	}
}

func TestListChangesSQL_NoFilters(t *testing.T) {
	q, args := listChangesSQL(changes.ListFilter{Limit: 5})
	if strings.Contains(q, "WHERE") {
		t.Fatalf("expected no WHERE, got %s", q)
	}
	if len(args) != 1 || args[0] != 5 {
		t.Fatalf("expected only limit arg, got %v", args)
	}
}

func TestMapError_CheckViolationIsInvalidGender(t *testing.T) {
	err := mapError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514", ConstraintName: "pets_gender_check"}))
	if !errors.Is(err, pets.ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}

	other := &pgconn.PgError{Code: "23505"}
	if got := mapError(other); got != other {
		t.Fatalf("expected other pg errors untouched, got %v", got)
	}
	if mapError(nil) != nil {
		t.Fatal("expected nil for nil")
	}
}
