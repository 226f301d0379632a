package pets

import (
	"context"
	"errors"
	"testing"

	"pets-provider/internal/contract"
)

// -------------------------
// Stub storage (registra escrituras)
// -------------------------

type stubRepo struct {
	nextID  int64
	rows    map[int64]Pet
	writes  int
	lastQ   Query
	failErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{nextID: 1, rows: map[int64]Pet{}}
}

func (r *stubRepo) Insert(ctx context.Context, p Pet) (int64, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.writes++
	p.ID = r.nextID
	r.nextID++
	r.rows[p.ID] = p
	return p.ID, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.rows[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *stubRepo) Query(ctx context.Context, q Query) ([]Pet, error) {
	r.lastQ = q
	out := make([]Pet, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) Update(ctx context.Context, q Query, patch Patch) (int, error) {
	r.writes++
	r.lastQ = q
	n := 0
	for id, p := range r.rows {
		if q.ID != nil && *q.ID != id {
			continue
		}
		if patch.Gender != nil {
			p.Gender = *patch.Gender
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		r.rows[id] = p
		n++
	}
	return n, nil
}

func (r *stubRepo) Delete(ctx context.Context, q Query) (int, error) {
	r.writes++
	r.lastQ = q
	return 0, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndAssignsID(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:   "  Toto ",
		Breed:  " Terrier ",
		Gender: contract.GenderMale,
		Weight: 7,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected id 1, got %d", p.ID)
	}
	if p.Name != "Toto" || p.Breed != "Terrier" {
		t.Fatalf("expected trimmed fields, got %#v", p)
	}
	if p.URI() != "content://com.example.android.pets/pets/1" {
		t.Fatalf("unexpected uri %s", p.URI())
	}
}

func TestService_Create_RejectsInvalidGender_NoWrite(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	for _, g := range []contract.Gender{-1, 3, 99} {
		_, err := svc.Create(context.Background(), CreateInput{Name: "Toto", Gender: g})
		if !errors.Is(err, ErrInvalidGender) {
			t.Fatalf("gender %d: expected ErrInvalidGender, got %v", g, err)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("gender %d: expected error to wrap ErrInvalidInput", g)
		}
	}
	if repo.writes != 0 {
		t.Fatalf("expected no writes to storage, got %d", repo.writes)
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newStubRepo())

	if _, err := svc.Create(context.Background(), CreateInput{Name: "   "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Toto", Weight: -1}); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	// breed es opcional y weight 0 es válido
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Toto"}); err != nil {
		t.Fatalf("expected ok with only name, got %v", err)
	}
}

func TestService_Create_WrapsRepoError(t *testing.T) {
	repo := newStubRepo()
	repo.failErr = errors.New("disk full")
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Toto"})
	if err == nil || !errors.Is(err, repo.failErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestService_Update_EmptyPatchDoesNotWrite(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	n, err := svc.Update(context.Background(), Query{}, Patch{})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if n != 0 || repo.writes != 0 {
		t.Fatalf("expected 0 rows and no writes, got n=%d writes=%d", n, repo.writes)
	}
}

func TestService_Update_ValidatesPresentFields(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	_, _ = svc.Create(context.Background(), CreateInput{Name: "Toto"})
	writes := repo.writes

	bad := contract.Gender(5)
	if _, err := svc.Update(context.Background(), Query{}, Patch{Gender: &bad}); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
	empty := " "
	if _, err := svc.Update(context.Background(), Query{}, Patch{Name: &empty}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	neg := -3
	if _, err := svc.Update(context.Background(), Query{}, Patch{Weight: &neg}); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("expected ErrInvalidWeight, got %v", err)
	}
	if repo.writes != writes {
		t.Fatalf("expected no writes on invalid patch")
	}

	female := contract.GenderFemale
	n, err := svc.Update(context.Background(), Query{}, Patch{Gender: &female})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 row updated, got n=%d err=%v", n, err)
	}
	p, _ := svc.GetByID(context.Background(), 1)
	if p.Gender != contract.GenderFemale {
		t.Fatalf("expected female, got %s", p.Gender)
	}
}

func TestService_List_NormalizesQuery(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)

	if _, err := svc.List(context.Background(), Query{Breed: " pug "}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.lastQ.SortBy != contract.ID {
		t.Fatalf("expected default sort by _id, got %q", repo.lastQ.SortBy)
	}
	if repo.lastQ.Breed != "pug" {
		t.Fatalf("expected trimmed breed, got %q", repo.lastQ.Breed)
	}

	if _, err := svc.List(context.Background(), Query{SortBy: "owner"}); !errors.Is(err, ErrInvalidSort) {
		t.Fatalf("expected ErrInvalidSort, got %v", err)
	}
	bad := contract.Gender(9)
	if _, err := svc.List(context.Background(), Query{Gender: &bad}); !errors.Is(err, ErrInvalidGender) {
		t.Fatalf("expected ErrInvalidGender, got %v", err)
	}
	if _, err := svc.List(context.Background(), Query{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newStubRepo())
	if _, err := svc.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
