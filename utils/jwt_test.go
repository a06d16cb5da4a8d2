package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemate/models"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-123", models.RoleCustomer, "+919800000001", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RoleCustomer, claims.Role)
	assert.Equal(t, "+919800000001", claims.Phone)
}

func TestExtractClaimsExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-123", models.RoleExpert, "+919800000001", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractClaims(token)
	assert.Error(t, err)
}

func TestExtractClaimsGarbage(t *testing.T) {
	_, err := ExtractClaims("not.a.token")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}

func TestGenerateJobOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		otp, err := GenerateJobOTP()
		require.NoError(t, err)
		require.Len(t, otp, 4)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[otp] = true
	}
	// 50 draws from 10000 values should not all collide.
	assert.Greater(t, len(seen), 1)
}
