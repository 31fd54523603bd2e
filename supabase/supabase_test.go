package supabase

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clementus360/ai-helper-web/config"
	"clementus360/ai-helper-web/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRequiresCredentials(t *testing.T) {
	_, err := NewStore("", "key")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = NewStore("https://example.supabase.co", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	store, err := NewStore("https://example.supabase.co", "key")
	require.NoError(t, err)
	assert.NotNil(t, store)
}

func TestIdentityFromCookie(t *testing.T) {
	token := signedToken(t, "user-1")

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: config.AccessTokenCookie, Value: token})

	id, err := IdentityFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, token, id.Token)
}

func TestIdentityFromAuthorizationHeader(t *testing.T) {
	token := signedToken(t, "user-2")

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	id, err := IdentityFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "user-2", id.UserID)
}

func TestIdentityErrors(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	_, err := IdentityFromRequest(r)
	assert.ErrorIs(t, err, ErrNoToken)

	r.Header.Set("Authorization", "Bearer not-a-jwt")
	_, err = IdentityFromRequest(r)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestQueriesRejectAnonymous(t *testing.T) {
	store, err := NewStore("https://example.supabase.co", "key")
	require.NoError(t, err)

	_, err = store.GetSessions(types.Identity{}, 5)
	assert.Error(t, err)
	_, err = store.GetMessages(types.Identity{}, "42")
	assert.Error(t, err)
	_, err = store.GetTasks(types.Identity{}, 5)
	assert.Error(t, err)
	_, _, err = store.GetSessionMetrics(types.Identity{}, "42")
	assert.Error(t, err)
}
