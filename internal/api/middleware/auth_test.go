package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func callAuth(t *testing.T, headers map[string]string) (*httptest.ResponseRecorder, domain.Actor, bool) {
	t.Helper()

	var (
		actor domain.Actor
		found bool
	)
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, found = GetActor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/1", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, actor, found
}

func TestAuth_ClientActor(t *testing.T) {
	rec, actor, found := callAuth(t, map[string]string{
		"X-User-ID":   "10",
		"X-User-Role": "client",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, domain.ClientActor{ID: 10}, actor)
}

func TestAuth_ManagerActor(t *testing.T) {
	rec, actor, found := callAuth(t, map[string]string{
		"X-User-ID":   "1",
		"X-User-Role": "manager",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, domain.ManagerActor{ID: 1}, actor)
}

func TestAuth_MissingRoleDefaultsToClient(t *testing.T) {
	rec, actor, found := callAuth(t, map[string]string{
		"X-User-ID": "10",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, domain.ClientActor{ID: 10}, actor)
}

func TestAuth_MissingUserID(t *testing.T) {
	rec, _, found := callAuth(t, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuth_InvalidUserID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-5"} {
		rec, _, _ := callAuth(t, map[string]string{"X-User-ID": id})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "id=%s", id)
	}
}

func TestAuth_UnknownRole(t *testing.T) {
	rec, _, _ := callAuth(t, map[string]string{
		"X-User-ID":   "10",
		"X-User-Role": "admin",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
