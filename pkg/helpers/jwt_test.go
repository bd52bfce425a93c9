package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.GenerateAuthToken("test@test.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "test@test.com", claims.Email)
	assert.Equal(t, "test@test.com", claims.Subject)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.GenerateAuthToken("test@test.com")
	require.NoError(t, err)

	_, err = m.ParseAuthToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_Tampered(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, _, err := m.GenerateAuthToken("test@test.com")
	require.NoError(t, err)

	// Corrupt one byte in each segment of the token.
	for _, pos := range []int{0, len(token) / 2, len(token) - 1} {
		b := []byte(token)
		if b[pos] == 'x' {
			b[pos] = 'y'
		} else {
			b[pos] = 'x'
		}
		_, err := m.ParseAuthToken(string(b))
		assert.ErrorIs(t, err, ErrTokenInvalid, "position %d", pos)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := NewJWTManager("issuer-secret", time.Hour)
	verifier := NewJWTManager("other-secret", time.Hour)

	token, _, err := issuer.GenerateAuthToken("test@test.com")
	require.NoError(t, err)

	_, err = verifier.ParseAuthToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_Malformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := m.ParseAuthToken(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}
