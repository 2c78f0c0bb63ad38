package services

import (
	"context"
	"testing"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserFixture(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	users := []models.User{
		{Name: "Admin", Email: "admin@x.com", Password: "digest", Role: "admin", IsActive: true},
		{Name: "Vendor", Email: "vendor@x.com", Password: "digest", Role: "vendor", IsActive: true},
		{Name: "Customer", Email: "customer@x.com", Password: "digest", Role: "customer", IsActive: true},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	return NewUserService(repositories.NewUserRepository(db)), db
}

func TestListUsers(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	all, total, err := svc.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	vendors, total, err := svc.List(ctx, "vendor", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, vendors, 1)
	assert.Equal(t, "vendor@x.com", vendors[0].Email)

	_, _, err = svc.List(ctx, "superuser", 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestChangeRole(t *testing.T) {
	svc, db := newUserFixture(t)
	ctx := context.Background()

	var customer models.User
	require.NoError(t, db.Where("email = ?", "customer@x.com").First(&customer).Error)

	changed, err := svc.ChangeRole(ctx, customer.ID, "marketer")
	require.NoError(t, err)
	assert.Equal(t, "marketer", changed.Role)

	// Admin can be granted here, unlike at registration.
	changed, err = svc.ChangeRole(ctx, customer.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", changed.Role)

	_, err = svc.ChangeRole(ctx, customer.ID, "superuser")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = svc.ChangeRole(ctx, 9999, "vendor")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSetActive(t *testing.T) {
	svc, db := newUserFixture(t)
	ctx := context.Background()

	var vendor models.User
	require.NoError(t, db.Where("email = ?", "vendor@x.com").First(&vendor).Error)

	disabled, err := svc.SetActive(ctx, vendor.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)

	// Still present in the store, only deactivated.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, vendor.ID).Error)
	assert.False(t, reloaded.IsActive)

	enabled, err := svc.SetActive(ctx, vendor.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.IsActive)

	_, err = svc.SetActive(ctx, 9999, false)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
