package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret123", stored))
	assert.False(t, CheckPasswordHash("wrongpass", stored))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("secret123", first))
	assert.True(t, CheckPasswordHash("secret123", second))
}

func TestHashPasswordFormat(t *testing.T) {
	stored, err := HashPassword("secret123")
	require.NoError(t, err)

	parts := strings.Split(stored, ".")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], keyLen*2)  // hex-encoded key
	assert.Len(t, parts[1], saltLen*2) // hex-encoded salt
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("secret123", ""))
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
	assert.False(t, CheckPasswordHash("secret123", "zz.zz"))
	assert.False(t, CheckPasswordHash("secret123", "deadbeef.deadbeef.deadbeef"))

	// empty key and salt must not verify against anything
	assert.False(t, CheckPasswordHash("secret123", "."))
	assert.False(t, CheckPasswordHash("", "."))

	// well-formed hex but not a full-length key
	assert.False(t, CheckPasswordHash("secret123", "deadbeef.deadbeef"))
}
