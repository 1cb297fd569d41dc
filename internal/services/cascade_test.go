package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/IMKAT-ADU/imkat-dashboard/internal/apierr"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/repos"
	"github.com/IMKAT-ADU/imkat-dashboard/internal/types"
)

type hierarchyServices struct {
	db       *gorm.DB
	model    ModelService
	exterior ExteriorService
	option   OptionService
	costItem CostItemService
	extItem  ExteriorCostItemService
}

func newHierarchyServices(t *testing.T) hierarchyServices {
	t.Helper()
	db := openTestDB(t)
	log := newTestLogger(t)
	return hierarchyServices{
		db:       db,
		model:    NewModelService(db, log, repos.NewModelRepo(db, log)),
		exterior: NewExteriorService(db, log, repos.NewExteriorRepo(db, log)),
		option:   NewOptionService(db, log, repos.NewOptionRepo(db, log)),
		costItem: NewCostItemService(db, log, repos.NewCostItemRepo(db, log)),
		extItem:  NewExteriorCostItemService(db, log, repos.NewExteriorCostItemRepo(db, log)),
	}
}

func TestSchemaDeclaresCascadingForeignKeys(t *testing.T) {
	db := openTestDB(t)

	// Every child table's FK must carry ON DELETE CASCADE in the generated
	// DDL, or parent deletes fail at the constraint instead of cascading.
	for _, table := range []string{"exterior", "model_option", "cost_item", "exterior_cost_item", "location_markup"} {
		var ddl string
		if err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error; err != nil {
			t.Fatalf("failed to read schema for %s: %v", table, err)
		}
		if !strings.Contains(ddl, "ON DELETE CASCADE") {
			t.Fatalf("table %s foreign key does not cascade:\n%s", table, ddl)
		}
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestModelDelete_CascadesThroughWholeHierarchy(t *testing.T) {
	s := newHierarchyServices(t)
	ctx := context.Background()

	model, err := s.model.Create(ctx, ModelInput{Name: "Grove"})
	if err != nil {
		t.Fatalf("create model failed: %v", err)
	}

	const nExteriors, nOptions, nItems = 2, 3, 2
	for e := 0; e < nExteriors; e++ {
		ext, err := s.exterior.Create(ctx, ExteriorInput{Name: fmt.Sprintf("Exterior %d", e), ModelID: model.ID})
		if err != nil {
			t.Fatalf("create exterior failed: %v", err)
		}
		if _, err := s.extItem.Create(ctx, ExteriorCostItemInput{BtName: "Siding Upgrade", ExteriorID: ext.ID}); err != nil {
			t.Fatalf("create exterior cost item failed: %v", err)
		}
		for o := 0; o < nOptions; o++ {
			opt, err := s.option.Create(ctx, OptionInput{Name: fmt.Sprintf("Option %d", o), ExteriorID: ext.ID})
			if err != nil {
				t.Fatalf("create option failed: %v", err)
			}
			for i := 0; i < nItems; i++ {
				if _, err := s.costItem.Create(ctx, CostItemInput{BtName: fmt.Sprintf("BT-%d", i), OptionID: opt.ID}); err != nil {
					t.Fatalf("create cost item failed: %v", err)
				}
			}
		}
	}

	if got := countRows(t, s.db, &types.CostItem{}); got != nExteriors*nOptions*nItems {
		t.Fatalf("expected %d cost items before delete, got %d", nExteriors*nOptions*nItems, got)
	}

	if err := s.model.Delete(ctx, model.ID); err != nil {
		t.Fatalf("delete model failed: %v", err)
	}

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"exteriors", &types.Exterior{}},
		{"options", &types.Option{}},
		{"cost items", &types.CostItem{}},
		{"exterior cost items", &types.ExteriorCostItem{}},
	} {
		if got := countRows(t, s.db, probe.model); got != 0 {
			t.Fatalf("expected all %s removed by cascade, %d remain", probe.name, got)
		}
	}
}

func TestExteriorDelete_CascadesBelowOnly(t *testing.T) {
	s := newHierarchyServices(t)
	ctx := context.Background()

	model, err := s.model.Create(ctx, ModelInput{Name: "Hazel"})
	if err != nil {
		t.Fatalf("create model failed: %v", err)
	}
	keep, err := s.exterior.Create(ctx, ExteriorInput{Name: "Keep", ModelID: model.ID})
	if err != nil {
		t.Fatalf("create exterior failed: %v", err)
	}
	doomed, err := s.exterior.Create(ctx, ExteriorInput{Name: "Doomed", ModelID: model.ID})
	if err != nil {
		t.Fatalf("create exterior failed: %v", err)
	}
	opt, err := s.option.Create(ctx, OptionInput{Name: "Opt", ExteriorID: doomed.ID})
	if err != nil {
		t.Fatalf("create option failed: %v", err)
	}
	if _, err := s.costItem.Create(ctx, CostItemInput{BtName: "BT-1", OptionID: opt.ID}); err != nil {
		t.Fatalf("create cost item failed: %v", err)
	}

	if err := s.exterior.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete exterior failed: %v", err)
	}

	if _, err := s.model.Get(ctx, model.ID); err != nil {
		t.Fatalf("model should survive exterior delete: %v", err)
	}
	if _, err := s.exterior.Get(ctx, keep.ID); err != nil {
		t.Fatalf("sibling exterior should survive: %v", err)
	}
	if _, err := s.option.Get(ctx, opt.ID); !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected descendant option removed, got %v", err)
	}
	if got := countRows(t, s.db, &types.CostItem{}); got != 0 {
		t.Fatalf("expected cost items removed by cascade, %d remain", got)
	}
}

// The end-to-end walk from the dashboard workflow: create a model, attach an
// exterior, collide on the sibling name, delete the model, observe the
// exterior is gone too.
func TestHierarchyScenario_CreateCollideCascade(t *testing.T) {
	s := newHierarchyServices(t)
	ctx := context.Background()

	model, err := s.model.Create(ctx, ModelInput{Name: "C1 Model 1188"})
	if err != nil {
		t.Fatalf("create model failed: %v", err)
	}
	ext, err := s.exterior.Create(ctx, ExteriorInput{Name: "Classic", ModelID: model.ID})
	if err != nil {
		t.Fatalf("create exterior failed: %v", err)
	}

	_, err = s.exterior.Create(ctx, ExteriorInput{Name: "Classic", ModelID: model.ID})
	if !apierr.IsCode(err, apierr.CodeDuplicate) {
		t.Fatalf("expected duplicate exterior, got %v", err)
	}

	if err := s.model.Delete(ctx, model.ID); err != nil {
		t.Fatalf("delete model failed: %v", err)
	}
	_, err = s.exterior.Get(ctx, ext.ID)
	if !apierr.IsCode(err, apierr.CodeNotFound) {
		t.Fatalf("expected exterior gone after model delete, got %v", err)
	}
}
