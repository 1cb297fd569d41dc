package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
)

func newModelService(t *testing.T) (ModelService, repos.ModelRepo) {
	t.Helper()
	db := openTestDB(t)
	log := newTestLogger(t)
	modelRepo := repos.NewModelRepo(db, log)
	return NewModelService(db, log, modelRepo), modelRepo
}

func TestModelCreate_TrimsNameAndGeneratesID(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	model, err := svc.Create(ctx, ModelInput{Name: "  C1 Model 1188  "})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if model.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if model.Name != "C1 Model 1188" {
		t.Fatalf("expected trimmed name, got %q", model.Name)
	}
	if model.CreatedAt.IsZero() || model.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestModelCreate_EmptyNameRejected(t *testing.T) {
	svc, _ := newModelService(t)

	_, err := svc.Create(context.Background(), ModelInput{Name: "   "})
	if !apierr.IsCode(err, apierr.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModelCreate_DuplicateNameConflicts(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ModelInput{Name: "Aspen"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.Create(ctx, ModelInput{Name: "Aspen"})
	if !apierr.IsCode(err, apierr.CodeDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestModelUpdate_PartialPatchPreservesUntouchedFields(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ModelInput{Name: "Birch"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	desc := "Two-story plan"
	updated, err := svc.Update(ctx, created.ID, ModelPatch{Description: &desc})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Birch" {
		t.Fatalf("expected name unchanged, got %q", updated.Name)
	}
	if updated.Description == nil || *updated.Description != "Two-story plan" {
		t.Fatalf("expected description set, got %v", updated.Description)
	}
}

func TestModelUpdate_BlankDescriptionClearsToNull(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	desc := "temporary"
	created, err := svc.Create(ctx, ModelInput{Name: "Cedar", Description: &desc})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	blank := "   "
	updated, err := svc.Update(ctx, created.ID, ModelPatch{Description: &blank})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != nil {
		t.Fatalf("expected description cleared, got %q", *updated.Description)
	}
}

func TestModelUpdate_UnknownIDNotFound(t *testing.T) {
	svc, _ := newModelService(t)

	name := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), ModelPatch{Name: &name})
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestModelUpdate_RenameToSiblingConflicts(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ModelInput{Name: "Dogwood"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, ModelInput{Name: "Elm"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "Dogwood"
	_, err = svc.Update(ctx, second.ID, ModelPatch{Name: &name})
	if !apierr.IsCode(err, apierr.CodeDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestModelDelete_SecondDeleteReportsNotFound(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, ModelInput{Name: "Fir"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	err = svc.Delete(ctx, created.ID)
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestModelList_AlphabeticalOrder(t *testing.T) {
	svc, _ := newModelService(t)
	ctx := context.Background()

	for _, name := range []string{"Willow", "Alder", "Maple"} {
		if _, err := svc.Create(ctx, ModelInput{Name: name}); err != nil {
			t.Fatalf("create %q failed: %v", name, err)
		}
	}

	models, err := svc.List(ctx, repos.ModelShallow)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 models, got %d", len(models))
	}
	got := []string{models[0].Name, models[1].Name, models[2].Name}
	want := []string{"Alder", "Maple", "Willow"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
