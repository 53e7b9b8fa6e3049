package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProfiles(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	seedUser(t, app, "rosa")

	w := doJSON(r, http.MethodGet, "/profiles/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	profiles := decodeList(t, w)
	require.Len(t, profiles, 2)
	assert.Equal(t, "jure", profiles[0]["owner"])
	assert.Equal(t, "rosa", profiles[1]["owner"])
	assert.Equal(t, false, profiles[0]["is_owner"])

	// authenticated callers see their own profile flagged
	w = doJSON(r, http.MethodGet, "/profiles/", tokenFor(t, jure), nil)
	require.Equal(t, http.StatusOK, w.Code)
	profiles = decodeList(t, w)
	assert.Equal(t, true, profiles[0]["is_owner"])
	assert.Equal(t, false, profiles[1]["is_owner"])
}

func TestListProfilesEmpty(t *testing.T) {
	_, r := newTestApp()
	w := doJSON(r, http.MethodGet, "/profiles/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}
