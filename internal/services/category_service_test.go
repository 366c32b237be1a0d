package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"newskoop/newsroom/internal/common"
	"newskoop/newsroom/internal/constants"
	"newskoop/newsroom/internal/db/repositories"
	"newskoop/newsroom/internal/models/dtos/requests"
	gormModels "newskoop/newsroom/internal/models/gorm"
)

func newCategoryService(t *testing.T) (*CategoryService, *gormModels.User, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCategoryService(db, repositories.NewCategoryRepository(db), common.NewCacheService(60, 120))
	editor := newStaffUser(t, db, "ed@newskoop.com", constants.RoleEditor)
	return svc, editor, db
}

func createCategory(t *testing.T, svc *CategoryService, actor *gormModels.User, name, slug string, parentID *string) *gormModels.Category {
	t.Helper()
	cat, err := svc.Create(context.Background(), actor, &requests.CategoryCreateRequest{
		Name:     name,
		Slug:     slug,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("create category %s: %v", slug, err)
	}
	return cat
}

func TestCategoryManageRequiresEditor(t *testing.T) {
	svc, _, db := newCategoryService(t)
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)

	_, err := svc.Create(context.Background(), journalist, &requests.CategoryCreateRequest{
		Name: "Sport", Slug: "sport",
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("got %v, want ErrPermissionDenied", err)
	}
}

func TestCategorySlugMustBeUnique(t *testing.T) {
	svc, editor, _ := newCategoryService(t)
	createCategory(t, svc, editor, "News", "news", nil)

	_, err := svc.Create(context.Background(), editor, &requests.CategoryCreateRequest{
		Name: "Other news", Slug: "news",
	})
	if err == nil || !IsValidation(err) {
		t.Errorf("duplicate slug: got %v, want validation error", err)
	}
}

func TestCategoryCycleRejected(t *testing.T) {
	svc, editor, _ := newCategoryService(t)
	ctx := context.Background()

	root := createCategory(t, svc, editor, "News", "news", nil)
	child := createCategory(t, svc, editor, "Politics", "politics", &root.ID)
	grandchild := createCategory(t, svc, editor, "Elections", "elections", &child.ID)

	// A category cannot be its own parent.
	_, err := svc.Update(ctx, editor, root.ID, &requests.CategoryUpdateRequest{
		Name: "News", Slug: "news", ParentID: &root.ID,
	})
	if err == nil || !IsValidation(err) {
		t.Errorf("self-parent: got %v, want validation error", err)
	}

	// Nor may it adopt one of its own descendants.
	_, err = svc.Update(ctx, editor, root.ID, &requests.CategoryUpdateRequest{
		Name: "News", Slug: "news", ParentID: &grandchild.ID,
	})
	if err == nil || !IsValidation(err) {
		t.Errorf("descendant parent: got %v, want validation error", err)
	}

	// Reparenting a leaf to another branch stays legal.
	other := createCategory(t, svc, editor, "Sport", "sport", nil)
	moved, err := svc.Update(ctx, editor, grandchild.ID, &requests.CategoryUpdateRequest{
		Name: "Elections", Slug: "elections", ParentID: &other.ID,
	})
	if err != nil {
		t.Fatalf("legal reparent: %v", err)
	}
	if moved.ParentID == nil || *moved.ParentID != other.ID {
		t.Error("reparent did not persist")
	}
}

func TestCategoryTreeCaching(t *testing.T) {
	svc, editor, db := newCategoryService(t)
	ctx := context.Background()

	createCategory(t, svc, editor, "News", "news", nil)
	first, err := svc.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("tree has %d roots, want 1", len(first))
	}

	// A row written behind the service's back must not show up: the second
	// read is served from cache.
	if err := db.Create(&gormModels.Category{Name: "Backdoor", Slug: "backdoor"}).Error; err != nil {
		t.Fatalf("direct insert: %v", err)
	}
	cached, err := svc.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(cached) != 1 {
		t.Errorf("tree has %d roots, want the cached 1", len(cached))
	}

	// A service mutation invalidates the key; the next read is fresh.
	createCategory(t, svc, editor, "Sport", "sport", nil)
	fresh, err := svc.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(fresh) != 3 {
		t.Errorf("tree has %d roots after invalidation, want 3", len(fresh))
	}
}

func TestCategoryDeleteGuards(t *testing.T) {
	svc, editor, db := newCategoryService(t)
	ctx := context.Background()

	root := createCategory(t, svc, editor, "News", "news", nil)
	child := createCategory(t, svc, editor, "Politics", "politics", &root.ID)

	if err := svc.Delete(ctx, editor, root.ID); err == nil || !IsValidation(err) {
		t.Errorf("delete with children: got %v, want validation error", err)
	}

	// Link content to the child and try again.
	journalist := newStaffUser(t, db, "jr@newskoop.com", constants.RoleJournalist)
	story := newStory(t, db, "Cabinet reshuffle", journalist, constants.StatusDraft, constants.LanguageEnglish)
	if err := db.Model(story).Association("Categories").Append(child); err != nil {
		t.Fatalf("link story: %v", err)
	}
	if err := svc.Delete(ctx, editor, child.ID); err == nil || !IsValidation(err) {
		t.Errorf("delete with linked content: got %v, want validation error", err)
	}

	// An empty leaf deletes cleanly.
	leaf := createCategory(t, svc, editor, "Weather", "weather", nil)
	if err := svc.Delete(ctx, editor, leaf.ID); err != nil {
		t.Fatalf("delete empty category: %v", err)
	}
	if err := svc.Delete(ctx, editor, leaf.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}
