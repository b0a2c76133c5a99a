package token_test

import (
	"strings"
	"testing"
	"time"

	"app/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()

	c, err := token.NewCodec("test-secret", "HS256", time.Hour, 48*time.Hour)
	require.NoError(t, err)
	return c
}

func TestIssueParseRoundTrip(t *testing.T) {
	c := newTestCodec(t)

	user := token.UserClaims{
		Email:   "alice@example.com",
		UserUID: "c6b8e7e3-0000-0000-0000-000000000001",
		Role:    "user",
	}

	signed, err := c.Issue(user, time.Hour, false)
	require.NoError(t, err)

	claims, err := c.Parse(signed)
	require.NoError(t, err)

	assert.Equal(t, user, claims.User)
	assert.False(t, claims.Refresh)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestRefreshFlagPreserved(t *testing.T) {
	c := newTestCodec(t)

	signed, err := c.IssueRefresh(token.UserClaims{Email: "a@b.co", UserUID: "u1"})
	require.NoError(t, err)

	claims, err := c.Parse(signed)
	require.NoError(t, err)
	assert.True(t, claims.Refresh)
}

func TestJTIIsFreshPerIssue(t *testing.T) {
	c := newTestCodec(t)
	user := token.UserClaims{Email: "a@b.co", UserUID: "u1"}

	first, err := c.Issue(user, time.Hour, false)
	require.NoError(t, err)
	second, err := c.Issue(user, time.Hour, false)
	require.NoError(t, err)

	c1, err := c.Parse(first)
	require.NoError(t, err)
	c2, err := c.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	c := newTestCodec(t)

	signed, err := c.Issue(token.UserClaims{Email: "a@b.co", UserUID: "u1"}, time.Hour, false)
	require.NoError(t, err)

	//署名部分の1文字を差し替える
	last := signed[len(signed)-1]
	replacement := byte('A')
	if last == replacement {
		replacement = 'B'
	}
	tampered := signed[:len(signed)-1] + string(replacement)

	_, err = c.Parse(tampered)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	c := newTestCodec(t)

	signed, err := c.Issue(token.UserClaims{Email: "a@b.co", UserUID: "u1"}, -time.Minute, false)
	require.NoError(t, err)

	_, err = c.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	c := newTestCodec(t)

	other, err := token.NewCodec("other-secret", "HS256", time.Hour, 48*time.Hour)
	require.NoError(t, err)

	signed, err := other.Issue(token.UserClaims{Email: "a@b.co", UserUID: "u1"}, time.Hour, false)
	require.NoError(t, err)

	_, err = c.Parse(signed)
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestParseRejectsGarbage(t *testing.T) {
	c := newTestCodec(t)

	for _, raw := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 500)} {
		_, err := c.Parse(raw)
		assert.ErrorIs(t, err, token.ErrTokenInvalid)
	}
}

func TestNewCodecValidation(t *testing.T) {
	_, err := token.NewCodec("", "HS256", time.Hour, time.Hour)
	assert.Error(t, err)
}
