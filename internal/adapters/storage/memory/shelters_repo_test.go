package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelter-registry/internal/domain/shelters"
)

func TestShelterRepo_CreateGetList(t *testing.T) {
	repo := NewShelterRepo()
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	for i, name := range []string{"Zeta", "Alfa", "Alfa"} {
		err := repo.Create(ctx, shelters.Shelter{
			ID:        name + string(rune('0'+i)),
			Name:      name,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	if err := repo.Create(ctx, shelters.Shelter{ID: "Zeta0"}); err == nil {
		t.Fatalf("expected duplicate id error")
	}

	got, err := repo.GetByID(ctx, "Alfa1")
	if err != nil || got.Name != "Alfa" {
		t.Fatalf("GetByID: %v %#v", err, got)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, shelters.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	if ids[0] != "Alfa1" || ids[1] != "Alfa2" || ids[2] != "Zeta0" {
		t.Fatalf("unexpected order: %v", ids)
	}
}
