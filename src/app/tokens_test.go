package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Minute)

	t.Run("IssueThenValidate", func(t *testing.T) {
		token, err := tokens.Issue("alice")
		require.NoError(t, err)

		subject, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := tokens.IssueWithTTL("alice", -time.Minute)
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Tampered", func(t *testing.T) {
		token, err := tokens.Issue("alice")
		require.NoError(t, err)

		_, err = tokens.Validate(token + "x")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Minute)
		token, err := other.Issue("alice")
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		token, err := tokens.Issue("")
		require.NoError(t, err)

		_, err = tokens.Validate(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := tokens.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
