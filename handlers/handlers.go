// Package handlers contains the gin endpoint handlers for the harmonize
// API. Each handler loads records through the injected Store, gates
// writes with the ownership predicate and answers in the serializers'
// wire shape.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"harmonize/counters"
	"harmonize/middleware"
	"harmonize/storage"
	"harmonize/store"
)

type App struct {
	Store  store.Store
	Images storage.ImageStore
	Likes  *counters.LikeCounter // nil disables like counting
}

// Router wires every route of the API. Paths keep their trailing slash
// for wire compatibility with the original deployment.
func (a *App) Router() *gin.Engine {
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Identify())

	r.GET("/", a.Welcome)
	r.POST("/register", a.Register)
	r.POST("/login", a.Login)

	r.GET("/posts/", a.ListPosts)
	r.POST("/posts/", a.CreatePost)
	r.GET("/posts/:id/", a.GetPost)
	r.PUT("/posts/:id/", a.UpdatePost)
	r.DELETE("/posts/:id/", a.DeletePost)

	r.GET("/comments/", a.ListComments)
	r.POST("/comments/", a.CreateComment)
	r.GET("/comments/:id/", a.GetComment)
	r.PUT("/comments/:id/", a.UpdateComment)
	r.DELETE("/comments/:id/", a.DeleteComment)

	// likes have no update: a like is created or removed, never edited
	r.GET("/likes/", a.ListLikes)
	r.POST("/likes/", a.CreateLike)
	r.GET("/likes/:id/", a.GetLike)
	r.DELETE("/likes/:id/", a.DeleteLike)

	r.GET("/profiles/", a.ListProfiles)

	return r
}

func (a *App) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Hi there, welcome to the Harmonize API",
	})
}

// paramID parses the :id path segment. A non-numeric id is a 404, not a
// 400: the path simply names no record.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"detail": "You do not have permission to perform this action."})
}

func authRequired(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"detail": "Authentication credentials were not provided."})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
