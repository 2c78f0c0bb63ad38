package services

import (
	"context"
	"testing"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	return NewCategoryService(repositories.NewCategoryRepository(newTestDB(t)))
}

func TestCreateCategory(t *testing.T) {
	svc := newTestCategoryService(t)

	category, err := svc.Create(context.Background(), &CategoryInput{
		Name: "Electronics",
		Slug: "Electronics", // stored lowercased
	})
	require.NoError(t, err)

	assert.Equal(t, "electronics", category.Slug)
	assert.True(t, category.IsActive)
	assert.NotZero(t, category.ID)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CategoryInput{Name: "", Slug: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, &CategoryInput{Name: "X", Slug: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	svc := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CategoryInput{Name: "Fashion", Slug: "fashion"})
	require.NoError(t, err)

	// Case differences collapse onto the same slug.
	_, err = svc.Create(ctx, &CategoryInput{Name: "Fashion Again", Slug: "FASHION"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	svc := newTestCategoryService(t)

	missing := uint(404)
	_, err := svc.Create(context.Background(), &CategoryInput{
		Name: "Phones", Slug: "phones", ParentID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestListCategoriesOrdering(t *testing.T) {
	svc := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CategoryInput{Name: "Zeta", Slug: "zeta", SortOrder: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CategoryInput{Name: "Alpha", Slug: "alpha", SortOrder: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CategoryInput{Name: "Beta", Slug: "beta", SortOrder: 1})
	require.NoError(t, err)

	categories, err := svc.List(ctx, repositories.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, categories, 3)

	// sort_order ascending, name breaking ties.
	assert.Equal(t, "beta", categories[0].Slug)
	assert.Equal(t, "zeta", categories[1].Slug)
	assert.Equal(t, "alpha", categories[2].Slug)
}

func TestListCategoriesParentFilter(t *testing.T) {
	svc := newTestCategoryService(t)
	ctx := context.Background()

	root, err := svc.Create(ctx, &CategoryInput{Name: "Electronics", Slug: "electronics"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CategoryInput{Name: "Phones", Slug: "phones", ParentID: &root.ID})
	require.NoError(t, err)

	roots, err := svc.List(ctx, repositories.CategoryFilter{RootsOnly: true})
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "electronics", roots[0].Slug)

	children, err := svc.List(ctx, repositories.CategoryFilter{ParentID: &root.ID})
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "phones", children[0].Slug)
}

func TestListCategoriesHidesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewCategoryRepository(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, &CategoryInput{Name: "Retired", Slug: "retired"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CategoryInput{Name: "Active", Slug: "active"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Category{}).
		Where("id = ?", created.ID).
		Update("is_active", false).Error)

	visible, err := svc.List(ctx, repositories.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "active", visible[0].Slug)

	all, err := svc.List(ctx, repositories.CategoryFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetCategoryBySlug(t *testing.T) {
	svc := newTestCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CategoryInput{Name: "Groceries", Slug: "groceries"})
	require.NoError(t, err)

	found, err := svc.GetBySlug(ctx, "  GROCERIES ")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", found.Name)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
