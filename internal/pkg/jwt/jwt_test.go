package jwt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestIssueResolveRoundTrip(t *testing.T) {
	token, err := Issue(42, "vendor", "+96650000000", true, testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Resolve(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vendor", claims.Role)
	assert.Equal(t, "+96650000000", claims.Phone)
	assert.True(t, claims.IsActive)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestResolveRejectsWrongSecret(t *testing.T) {
	token, err := Issue(1, "customer", "", true, testSecret, 15)
	require.NoError(t, err)

	claims, err := Resolve(token, "another-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResolveRejectsTamperedSignature(t *testing.T) {
	token, err := Issue(1, "admin", "", true, testSecret, 15)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one byte of the signature.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := Resolve(tampered, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	token, err := Issue(1, "customer", "", true, testSecret, -1)
	require.NoError(t, err)

	claims, err := Resolve(token, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestResolveRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		claims, err := Resolve(tok, testSecret)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
