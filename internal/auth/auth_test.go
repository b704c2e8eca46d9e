package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokerhands/internal/store"
)

func newUsers(t *testing.T) *Users {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "poker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUsers(db)
}

func TestUsersCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := newUsers(t)

	u, err := users.Create(ctx, "  dealer_1 ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "dealer_1", u.Username)
	assert.NotEqual(t, "correct horse", u.PasswordHash)

	_, err = users.Create(ctx, "DEALER_1", "another password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err := users.Authenticate(ctx, "Dealer_1", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = users.Authenticate(ctx, "dealer_1", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = users.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	byID, err := users.ByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "dealer_1", byID.Username)

	_, err = users.ByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name, user, pass string
		ok               bool
	}{
		{"ok", "alice", "password1", true},
		{"short username", "al", "password1", false},
		{"long username", "abcdefghijklmnopqrstuvwxy", "password1", false},
		{"bad chars", "al ice", "password1", false},
		{"short password", "alice", "pass", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignup(tt.user, tt.pass)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	u := &User{ID: "u-1", Username: "alice"}

	tok, exp, err := tokens.Sign(u)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tokens.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokensRejects(t *testing.T) {
	u := &User{ID: "u-1", Username: "alice"}

	other, _, err := NewTokens("other-secret", time.Hour).Sign(u)
	require.NoError(t, err)
	_, err = NewTokens("test-secret", time.Hour).Parse(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := NewTokens("test-secret", -time.Minute).Sign(u)
	require.NoError(t, err)
	_, err = NewTokens("test-secret", time.Hour).Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokens("test-secret", time.Hour).Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCookieConfigFromRequest(t *testing.T) {
	cc := CookieConfig{Name: "poker_token"}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, cc.FromRequest(r))

	r.AddCookie(&http.Cookie{Name: "poker_token", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", cc.FromRequest(r))

	r.Header.Set("Authorization", "Bearer from-header")
	assert.Equal(t, "from-header", cc.FromRequest(r))

	w := httptest.NewRecorder()
	cc.Set(w, "tok", time.Now().Add(time.Hour))
	cc.Clear(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, -1, cookies[1].MaxAge)
}
