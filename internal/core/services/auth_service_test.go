package services

import (
	"context"
	"testing"

	"tijara-market/internal/adapters/persistence/models"
	"tijara-market/internal/adapters/persistence/repositories"
	"tijara-market/internal/config"
	"tijara-market/internal/core/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test-jwt-secret",
			AccessTokenMins: 15,
		},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repositories.NewUserRepository(db), newTestConfig()), db
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{
		Name:     "Vendor One",
		Email:    "Vendor@Example.COM",
		Password: "secret-pass-1",
		Role:     "vendor",
		Phone:    "+123456789",
	})
	require.NoError(t, err)
	require.NotNil(t, reg.User)
	assert.Equal(t, "vendor@example.com", reg.User.Email)
	assert.Equal(t, "vendor", reg.User.Role)
	assert.True(t, reg.User.IsActive)
	assert.NotEmpty(t, reg.AccessToken)

	// Same credentials sign in, email case-insensitive.
	login, err := svc.Login(ctx, &LoginInput{
		Email:    "VENDOR@example.com",
		Password: "secret-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegisterTokenCarriesIdentity(t *testing.T) {
	svc, _ := newTestAuthService(t)

	reg, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Customer",
		Email:    "c@example.com",
		Password: "secret-pass-1",
	})
	require.NoError(t, err)

	claims, err := svc.ResolveToken(reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
	assert.True(t, claims.IsActive)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Name: "First", Email: "a@x.com", Password: "secret-pass-1", Role: "vendor",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{
		Name: "Second", Email: "A@X.com", Password: "other-pass-22",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// No second identity persisted.
	var count int64
	db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRoleValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		role    string
		wantErr error
	}{
		{name: "unknown role rejected", role: "superuser", wantErr: domain.ErrInvalidRole},
		{name: "admin not self-assignable", role: "admin", wantErr: domain.ErrRoleNotPermitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &RegisterInput{
				Name: "User", Email: tt.role + "@x.com", Password: "secret-pass-1", Role: tt.role,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Empty role defaults to customer.
	reg, err := svc.Register(ctx, &RegisterInput{
		Name: "User", Email: "default@x.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "customer", reg.User.Role)
}

func TestRegisterMissingCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Name: "X", Email: "", Password: "secret-pass-1"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = svc.Register(ctx, &RegisterInput{Name: "X", Email: "x@x.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		Name: "User", Email: "known@x.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must yield the same error kind.
	_, unknownErr := svc.Login(ctx, &LoginInput{Email: "unknown@x.com", Password: "secret-pass-1"})
	_, wrongErr := svc.Login(ctx, &LoginInput{Email: "known@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{
		Name: "User", Email: "off@x.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", reg.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login(ctx, &LoginInput{Email: "off@x.com", Password: "secret-pass-1"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)
}

func TestPasswordNeverStoredInPlaintext(t *testing.T) {
	svc, db := newTestAuthService(t)

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name: "User", Email: "hash@x.com", Password: "secret-pass-1",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", "hash@x.com").First(&user).Error)
	assert.NotEqual(t, "secret-pass-1", user.Password)
	assert.NotContains(t, user.Password, "secret-pass-1")
}
