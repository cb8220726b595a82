package shelters

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelter-registry/internal/platform/validation"

	"github.com/google/go-cmp/cmp"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID      map[string]Shelter
	createErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Shelter{}}
}

func (r *testRepo) Create(ctx context.Context, s Shelter) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Shelter, error) {
	s, ok := r.byID[id]
	if !ok {
		return Shelter{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context) ([]Shelter, error) {
	out := make([]Shelter, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, nil)
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// -------------------------
// Tests
// -------------------------

func TestCreate_OK(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	sh, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:        "Abrigo Central",
		Address:     "Rua A, 100",
		Capacity:    intPtr(50),
		PetFriendly: boolPtr(true),
		Pix:         strPtr("abrigo@pix"),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sh.ID == "" {
		t.Fatalf("expected generated id")
	}
	if sh.CreatedByUserID != "user-1" {
		t.Fatalf("expected created_by user-1, got %q", sh.CreatedByUserID)
	}
	if !sh.CreatedAt.Equal(svc.now()) || !sh.UpdatedAt.Equal(svc.now()) {
		t.Fatalf("expected timestamps from clock, got %v / %v", sh.CreatedAt, sh.UpdatedAt)
	}

	stored, err := repo.GetByID(context.Background(), sh.ID)
	if err != nil {
		t.Fatalf("expected stored shelter, got %v", err)
	}
	if diff := cmp.Diff(sh, stored); diff != "" {
		t.Fatalf("stored shelter mismatch (-want +got):\n%s", diff)
	}
}

func TestCreate_EmptyUserIsInvalid(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Create(context.Background(), "  ", CreateInput{Name: "A", Address: "B"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		ShelteredPeople: intPtr(-1),
		Capacity:        intPtr(0),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected errors.Is ErrInvalidInput")
	}

	want := validation.FieldErrors{
		"name":            validation.MsgRequired,
		"address":         validation.MsgRequired,
		"shelteredPeople": "O valor mínimo para este campo é 0",
		"capacity":        "O valor mínimo para este campo é 1",
	}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected nothing stored")
	}
}

func TestCreate_NilNumbersAreAccepted(t *testing.T) {
	svc := newTestService(newTestRepo())

	sh, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "A", Address: "B"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sh.Capacity != nil || sh.ShelteredPeople != nil {
		t.Fatalf("expected nil numbers preserved")
	}
}

func TestCreate_SanitizesText(t *testing.T) {
	svc := newTestService(newTestRepo())

	sh, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:    `<b>Abrigo</b><script>alert(1)</script>`,
		Address: "Rua A & B",
		Contact: strPtr("<i></i>"),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sh.Name != "Abrigo" {
		t.Fatalf("expected markup stripped, got %q", sh.Name)
	}
	if sh.Address != "Rua A & B" {
		t.Fatalf("expected entities kept as text, got %q", sh.Address)
	}
	if sh.Contact != nil {
		t.Fatalf("expected empty contact after sanitize to be nil, got %q", *sh.Contact)
	}
}

func TestCreate_MarkupOnlyNameIsRequired(t *testing.T) {
	svc := newTestService(newTestRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "<p></p>", Address: "B"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Fields["name"] != validation.MsgRequired {
		t.Fatalf("expected name required after sanitize, got %v", err)
	}
}

func TestCreate_RepoErrorIsWrapped(t *testing.T) {
	repoErr := errors.New("db down")
	repo := newTestRepo()
	repo.createErr = repoErr
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), "user-1", CreateInput{Name: "A", Address: "B"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestGetByID_EmptyIsNotFound(t *testing.T) {
	svc := newTestService(newTestRepo())

	if _, err := svc.GetByID(context.Background(), " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: validation.FieldErrors{"name": "x", "address": "y"}}
	if got := err.Error(); got != "address: y; name: x" {
		t.Fatalf("expected sorted message, got %q", got)
	}
}
