package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, r := newTestApp()

	w := doJSON(r, http.MethodPost, "/register", "", map[string]string{
		"username": "jure", "password": "password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// registration also creates the profile
	profile, err := app.Store.ProfileByOwner(1)
	require.NoError(t, err)
	assert.Equal(t, "jure", profile.Name)

	w = doJSON(r, http.MethodPost, "/login", "", map[string]string{
		"username": "jure", "password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	// the issued token authenticates writes
	w = doJSON(r, http.MethodPost, "/posts/", token, map[string]string{
		"title": "post title", "category": "Quotes",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	_, r := newTestApp()

	w := doJSON(r, http.MethodPost, "/register", "", map[string]string{"username": "jure"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "password")

	w = doJSON(r, http.MethodPost, "/register", "", map[string]string{"password": "password"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "username")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	_, r := newTestApp()

	payload := map[string]string{"username": "jure", "password": "password"}
	w := doJSON(r, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/register", "", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "username")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, r := newTestApp()

	w := doJSON(r, http.MethodPost, "/register", "", map[string]string{
		"username": "jure", "password": "password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/login", "", map[string]string{
		"username": "jure", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/login", "", map[string]string{
		"username": "nobody", "password": "password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWelcome(t *testing.T) {
	_, r := newTestApp()
	w := doJSON(r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["message"], "Harmonize")
}
