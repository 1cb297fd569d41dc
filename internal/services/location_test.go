package services

import (
	"context"
	"testing"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
)

func newLocationService(t *testing.T) LocationService {
	t.Helper()
	db := openTestDB(t)
	log := newTestLogger(t)
	return NewLocationService(db, log, repos.NewLocationRepo(db, log))
}

func TestLocationCreate_NameUniqueAndMarkupNonNegative(t *testing.T) {
	svc := newLocationService(t)
	ctx := context.Background()

	loc, err := svc.Create(ctx, LocationInput{Name: "Seattle", Markup: 1.15})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if loc.Markup != 1.15 {
		t.Fatalf("expected markup 1.15, got %v", loc.Markup)
	}

	_, err = svc.Create(ctx, LocationInput{Name: "Seattle", Markup: 1.20})
	if !apierr.IsCode(err, apierr.CodeDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	_, err = svc.Create(ctx, LocationInput{Name: "Austin", Markup: -0.1})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for negative markup, got %v", err)
	}
	// Zero is a legal markup.
	if _, err := svc.Create(ctx, LocationInput{Name: "Boise", Markup: 0}); err != nil {
		t.Fatalf("zero markup should be accepted: %v", err)
	}
}

func TestLocationUpdate_RejectsNegativeMarkup(t *testing.T) {
	svc := newLocationService(t)
	ctx := context.Background()

	loc, err := svc.Create(ctx, LocationInput{Name: "Denver", Markup: 1.10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	bad := -2.0
	_, err = svc.Update(ctx, loc.ID, LocationPatch{Markup: &bad})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	good := 1.25
	updated, err := svc.Update(ctx, loc.ID, LocationPatch{Markup: &good})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Markup != 1.25 || updated.Name != "Denver" {
		t.Fatalf("expected markup 1.25 name Denver, got %v %q", updated.Markup, updated.Name)
	}
}

func TestLocationList_OrderedByName(t *testing.T) {
	svc := newLocationService(t)
	ctx := context.Background()

	for _, name := range []string{"Tacoma", "Austin", "Denver"} {
		if _, err := svc.Create(ctx, LocationInput{Name: name, Markup: 1}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}
	locations, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(locations) != 3 {
		t.Fatalf("expected 3 locations, got %d", len(locations))
	}
	want := []string{"Austin", "Denver", "Tacoma"}
	for i, name := range want {
		if locations[i].Name != name {
			t.Fatalf("expected position %d to be %q, got %q", i, name, locations[i].Name)
		}
	}
}
