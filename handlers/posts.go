package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"harmonize/middleware"
	"harmonize/models"
	"harmonize/permissions"
	"harmonize/serializers"
	"harmonize/store"
)

func (a *App) ListPosts(c *gin.Context) {
	posts, err := a.Store.Posts()
	if err != nil {
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializePosts(posts, requester))
}

func (a *App) CreatePost(c *gin.Context) {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		authRequired(c)
		return
	}

	var input serializers.PostInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	errs := input.Validate()
	file := imageFile(c)
	if file != nil {
		checkImage(file, errs)
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	post := models.Post{OwnerID: requester}
	input.Apply(&post)

	if file != nil {
		url, err := a.uploadImage(c, file)
		if err != nil {
			serverError(c, err)
			return
		}
		post.Image = url
	}

	if err := a.Store.CreatePost(&post); err != nil {
		serverError(c, err)
		return
	}

	created, err := a.Store.PostByID(post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializers.SerializePost(created, requester))
}

func (a *App) GetPost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := a.Store.PostByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	requester, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, serializers.SerializePost(post, requester))
}

func (a *App) UpdatePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := a.Store.PostByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	if !permissions.IsOwnerOrReadOnly(c.Request.Method, requester, post.OwnerID) {
		forbidden(c)
		return
	}

	var input serializers.PostInput
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	errs := input.Validate()
	file := imageFile(c)
	if file != nil {
		checkImage(file, errs)
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	input.Apply(post)
	if file != nil {
		url, err := a.uploadImage(c, file)
		if err != nil {
			serverError(c, err)
			return
		}
		post.Image = url
	}

	if err := a.Store.SavePost(post); err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.SerializePost(post, requester))
}

func (a *App) DeletePost(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		notFound(c)
		return
	}
	post, err := a.Store.PostByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	requester, _ := middleware.CurrentUser(c)
	if !permissions.IsOwnerOrReadOnly(c.Request.Method, requester, post.OwnerID) {
		forbidden(c)
		return
	}

	if err := a.Store.DeletePost(post.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// imageFile returns the optional multipart image, nil when the request
// is JSON or carries no file.
func imageFile(c *gin.Context) *multipart.FileHeader {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return nil
	}
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func checkImage(file *multipart.FileHeader, errs serializers.Errors) {
	src, err := file.Open()
	if err != nil {
		errs["image"] = "Upload a valid image."
		return
	}
	defer src.Close()
	for field, msg := range serializers.ValidateImage(src, file.Size) {
		errs[field] = msg
	}
}

// uploadImage stores a validated image under a fresh object name and
// returns its public URL.
func (a *App) uploadImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	if seeker, ok := src.(io.Seeker); ok {
		seeker.Seek(0, io.SeekStart)
	}

	objectName := uuid.New().String() + filepath.Ext(file.Filename)
	contentType := file.Header.Get("Content-Type")
	return a.Images.Put(c.Request.Context(), objectName, src, file.Size, contentType)
}
