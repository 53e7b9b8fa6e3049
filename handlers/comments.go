package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"harmonize/middleware"
	"harmonize/models"
	"harmonize/permissions"
	"harmonize/serializers"
	"harmonize/store"
)

func (a *App) ListComments(c *gin.Context) {
	comments, err := a.Store.Comments()
	if err != nil {
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializeComments(comments, requester))
}

func (a *App) CreateComment(c *gin.Context) {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		authRequired(c)
		return
	}

	var input serializers.CommentInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	errs := input.Validate()
	if input.Post == 0 {
		errs["post"] = "This field is required."
	} else if _, err := a.Store.PostByID(input.Post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			errs["post"] = fmt.Sprintf("Invalid pk %d - object does not exist.", input.Post)
		} else {
			serverError(c, err)
			return
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	comment := models.Comment{
		OwnerID: requester,
		PostID:  input.Post,
		Body:    input.Body,
	}
	if err := a.Store.CreateComment(&comment); err != nil {
		serverError(c, err)
		return
	}

	created, err := a.Store.CommentByID(comment.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializeComment(created, requester))
}

func (a *App) GetComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	comment, err := a.Store.CommentByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializeComment(comment, requester))
}

// UpdateComment edits the body; the post association is immutable.
func (a *App) UpdateComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	comment, err := a.Store.CommentByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	if !permissions.IsOwnerOrReadOnly(c.Request.Method, requester, comment.OwnerID) {
		forbidden(c)
		return
	}

	var input serializers.CommentInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	comment.Body = input.Body
	if err := a.Store.SaveComment(comment); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.SerializeComment(comment, requester))
}

func (a *App) DeleteComment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	comment, err := a.Store.CommentByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	if !permissions.IsOwnerOrReadOnly(c.Request.Method, requester, comment.OwnerID) {
		forbidden(c)
		return
	}

	if err := a.Store.DeleteComment(comment.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
