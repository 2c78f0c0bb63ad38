package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, Verify("correct horse battery staple", digest))
	assert.False(t, Verify("wrong password", digest))
}

func TestHashUsesConfiguredCost(t *testing.T) {
	digest, err := Hash("some-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestHashProducesUniqueDigests(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	// Each digest embeds a fresh salt.
	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedDigest(t *testing.T) {
	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, Verify("anything", "$2a$xx$garbage"))
}

func TestValidateLength(t *testing.T) {
	assert.False(t, ValidateLength("short"))
	assert.False(t, ValidateLength("1234567"))
	assert.True(t, ValidateLength("12345678"))
}
