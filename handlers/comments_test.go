package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonize/models"
)

func seedComment(t *testing.T, app *App, owner, post uint, body string) uint {
	t.Helper()
	c := models.Comment{OwnerID: owner, PostID: post, Body: body}
	require.NoError(t, app.Store.CreateComment(&c))
	return c.ID
}

func TestListCommentsIsPublic(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	post := seedPost(t, app, jure, "post title", "Quotes")
	seedComment(t, app, jure, post, "nice one")

	w := doJSON(r, http.MethodGet, "/comments/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := decodeList(t, w)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice one", comments[0]["body"])
	assert.Equal(t, "jure", comments[0]["owner"])
	assert.Equal(t, false, comments[0]["is_owner"])
}

func TestCreateCommentRequiresAuth(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	post := seedPost(t, app, jure, "post title", "Quotes")

	w := doJSON(r, http.MethodPost, "/comments/", "", map[string]any{
		"post": post, "body": "nice one",
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	comments, err := app.Store.Comments()
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCreateComment(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	rosa := seedUser(t, app, "rosa")
	post := seedPost(t, app, jure, "post title", "Quotes")

	w := doJSON(r, http.MethodPost, "/comments/", tokenFor(t, rosa), map[string]any{
		"post": post, "body": "nice one",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "rosa", body["owner"])
	assert.Equal(t, true, body["is_owner"])
	assert.Equal(t, float64(post), body["post"])
}

func TestCreateCommentValidation(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	seedPost(t, app, jure, "post title", "Quotes")
	token := tokenFor(t, jure)

	tests := []struct {
		name    string
		payload map[string]any
		field   string
	}{
		{"missing body", map[string]any{"post": 1}, "body"},
		{"missing post", map[string]any{"body": "nice one"}, "post"},
		{"unknown post", map[string]any{"post": 99, "body": "nice one"}, "post"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/comments/", token, tt.payload)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode(t, w), tt.field)
		})
	}
}

func TestUpdateComment(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	rosa := seedUser(t, app, "rosa")
	post := seedPost(t, app, jure, "post title", "Quotes")
	seedComment(t, app, jure, post, "nice one")

	// non-owner is rejected, record untouched
	w := doJSON(r, http.MethodPut, "/comments/1/", tokenFor(t, rosa), map[string]any{
		"body": "hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	comment, err := app.Store.CommentByID(1)
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Body)

	// owner may edit
	w = doJSON(r, http.MethodPut, "/comments/1/", tokenFor(t, jure), map[string]any{
		"body": "edited",
	})
	require.Equal(t, http.StatusOK, w.Code)
	comment, err = app.Store.CommentByID(1)
	require.NoError(t, err)
	assert.Equal(t, "edited", comment.Body)
	assert.Equal(t, jure, comment.OwnerID)
}

func TestDeleteComment(t *testing.T) {
	app, r := newTestApp()
	jure := seedUser(t, app, "jure")
	rosa := seedUser(t, app, "rosa")
	post := seedPost(t, app, jure, "post title", "Quotes")
	seedComment(t, app, jure, post, "nice one")

	w := doJSON(r, http.MethodDelete, "/comments/1/", tokenFor(t, rosa), nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, "/comments/1/", tokenFor(t, jure), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodGet, "/comments/1/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRetrieveCommentNotFound(t *testing.T) {
	_, r := newTestApp()
	w := doJSON(r, http.MethodGet, "/comments/999/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
