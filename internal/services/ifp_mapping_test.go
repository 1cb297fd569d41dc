package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

func newIFPMappingService(t *testing.T) (IFPMappingService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	log := newTestLogger(t)
	svc := NewIFPMappingService(db, log, repos.NewIFPMappingRepo(db, log), repos.NewLocationMarkupRepo(db, log))
	return svc, db
}

func TestIFPMappingCreate_LowercasesKey(t *testing.T) {
	svc, _ := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{IfpKey: "  Patio  ", BtName: "Patio Slab"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if mapping.IfpKey != "patio" {
		t.Fatalf("expected key stored as %q, got %q", "patio", mapping.IfpKey)
	}

	fetched, err := svc.Get(ctx, mapping.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.IfpKey != "patio" {
		t.Fatalf("expected key retrieved as %q, got %q", "patio", fetched.IfpKey)
	}

	_, err = svc.Create(ctx, IFPMappingInput{IfpKey: "PATIO", BtName: "Patio Slab Again"})
	if !apierr.IsCode(err, apierr.CodeDuplicate) {
		t.Fatalf("expected duplicate error for case-variant key, got %v", err)
	}
}

func TestIFPMappingCreate_RequiresKeyAndBtName(t *testing.T) {
	svc, _ := newIFPMappingService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, IFPMappingInput{IfpKey: "", BtName: "Slab"})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for empty key, got %v", err)
	}
	_, err = svc.Create(ctx, IFPMappingInput{IfpKey: "slab", BtName: "   "})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for blank BT name, got %v", err)
	}
}

func TestIFPMappingCreate_WithInitialMarkups(t *testing.T) {
	svc, _ := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{
		IfpKey: "garage",
		BtName: "Garage Base",
		LocationMarkups: []LocationMarkupInput{
			{Name: "Seattle", Markup: 1.15},
			{Name: "Austin", Markup: 1.05},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(mapping.LocationMarkups) != 2 {
		t.Fatalf("expected 2 markups, got %d", len(mapping.LocationMarkups))
	}
	// Markups come back ordered by name.
	if mapping.LocationMarkups[0].Name != "Austin" || mapping.LocationMarkups[1].Name != "Seattle" {
		t.Fatalf("expected markups ordered by name, got %q then %q",
			mapping.LocationMarkups[0].Name, mapping.LocationMarkups[1].Name)
	}
	for _, m := range mapping.LocationMarkups {
		if m.IFPMappingID != mapping.ID {
			t.Fatalf("markup %q not attached to mapping", m.Name)
		}
	}
}

func TestIFPMappingUpdate_ReplacesMarkupSet(t *testing.T) {
	svc, db := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{
		IfpKey: "deck",
		BtName: "Deck Base",
		LocationMarkups: []LocationMarkupInput{
			{Name: "Seattle", Markup: 1.15},
			{Name: "Austin", Markup: 1.05},
			{Name: "Denver", Markup: 1.10},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, mapping.ID, IFPMappingPatch{
		LocationMarkups: []LocationMarkupInput{{Name: "Boise", Markup: 0.95}},
		HasMarkups:      true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.LocationMarkups) != 1 {
		t.Fatalf("expected exactly 1 markup after replace, got %d", len(updated.LocationMarkups))
	}
	if updated.LocationMarkups[0].Name != "Boise" {
		t.Fatalf("expected surviving markup %q, got %q", "Boise", updated.LocationMarkups[0].Name)
	}

	var total int64
	if err := db.Model(&types.LocationMarkup{}).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected old markup rows deleted, found %d rows", total)
	}

	// Replacing with an empty set clears every row.
	cleared, err := svc.Update(ctx, mapping.ID, IFPMappingPatch{
		LocationMarkups: []LocationMarkupInput{},
		HasMarkups:      true,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(cleared.LocationMarkups) != 0 {
		t.Fatalf("expected no markups after clearing, got %d", len(cleared.LocationMarkups))
	}
}

func TestIFPMappingUpdate_OmittedMarkupsUntouched(t *testing.T) {
	svc, _ := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{
		IfpKey: "porch",
		BtName: "Porch Base",
		LocationMarkups: []LocationMarkupInput{
			{Name: "Seattle", Markup: 1.15},
			{Name: "Austin", Markup: 1.05},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newName := "Porch Base v2"
	updated, err := svc.Update(ctx, mapping.ID, IFPMappingPatch{BtName: &newName})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.BtName != "Porch Base v2" {
		t.Fatalf("expected BT name updated, got %q", updated.BtName)
	}
	if updated.IfpKey != "porch" {
		t.Fatalf("expected key untouched, got %q", updated.IfpKey)
	}
	if len(updated.LocationMarkups) != 2 {
		t.Fatalf("expected markup set untouched, got %d rows", len(updated.LocationMarkups))
	}
}

func TestIFPMappingUpdate_RejectsNegativeMarkup(t *testing.T) {
	svc, _ := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{IfpKey: "shed", BtName: "Shed Base"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, err = svc.Update(ctx, mapping.ID, IFPMappingPatch{
		LocationMarkups: []LocationMarkupInput{{Name: "Seattle", Markup: -0.5}},
		HasMarkups:      true,
	})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error for negative markup, got %v", err)
	}
}

func TestIFPMappingDelete_RemovesOwnedMarkups(t *testing.T) {
	svc, db := newIFPMappingService(t)
	ctx := context.Background()

	mapping, err := svc.Create(ctx, IFPMappingInput{
		IfpKey: "fence",
		BtName: "Fence Base",
		LocationMarkups: []LocationMarkupInput{
			{Name: "Seattle", Markup: 1.15},
			{Name: "Austin", Markup: 1.05},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, mapping.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var total int64
	if err := db.Model(&types.LocationMarkup{}).Count(&total).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected markups cascaded away, found %d rows", total)
	}

	if err := svc.Delete(ctx, mapping.ID); !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
