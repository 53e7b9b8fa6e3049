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

func (a *App) ListLikes(c *gin.Context) {
	likes, err := a.Store.Likes()
	if err != nil {
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializeLikes(likes, requester))
}

func (a *App) CreateLike(c *gin.Context) {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		authRequired(c)
		return
	}

	var input serializers.LikeInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	errs := input.Validate()
	if input.Post != 0 {
		if _, err := a.Store.PostByID(input.Post); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				errs["post"] = fmt.Sprintf("Invalid pk %d - object does not exist.", input.Post)
			} else {
				serverError(c, err)
				return
			}
		}
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	like := models.Like{OwnerID: requester, PostID: input.Post}
	if err := a.Store.CreateLike(&like); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, serializers.Errors{
				serializers.Detail: "You have already liked this post.",
			})
			return
		}
		serverError(c, err)
		return
	}
	a.Likes.Add(c.Request.Context(), like.PostID)

	created, err := a.Store.LikeByID(like.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializeLike(created, requester))
}

func (a *App) GetLike(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	like, err := a.Store.LikeByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializeLike(like, requester))
}

// DeleteLike is "unlike": only the like's owner may remove it.
func (a *App) DeleteLike(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	like, err := a.Store.LikeByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	if !permissions.IsOwnerOrReadOnly(c.Request.Method, requester, like.OwnerID) {
		forbidden(c)
		return
	}

	if err := a.Store.DeleteLike(like.ID); err != nil {
		serverError(c, err)
		return
	}
	a.Likes.Remove(c.Request.Context(), like.PostID)
	c.Status(http.StatusNoContent)
}
