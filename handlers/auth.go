package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"harmonize/middleware"
	"harmonize/models"
	"harmonize/serializers"
	"harmonize/store"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user and their profile in one go.
func (a *App) Register(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	errs := serializers.Errors{}
	if input.Username == "" {
		errs["username"] = "This field is required."
	}
	if input.Password == "" {
		errs["password"] = "This field is required."
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
	}
	if err := a.Store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, serializers.Errors{
				"username": "A user with that username already exists.",
			})
			return
		}
		serverError(c, err)
		return
	}

	profile := models.Profile{OwnerID: user.ID, Name: user.Username}
	if err := a.Store.CreateProfile(&profile); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "register success",
		"id":      user.ID,
	})
}

// Login checks the password and issues a 24h session token.
func (a *App) Login(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "malformed request body")
		return
	}

	user, err := a.Store.UserByUsername(input.Username)
	if err != nil {
		badRequest(c, "invalid username or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		badRequest(c, "invalid username or password")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		middleware.UserKey: user.ID,
		"exp":              time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(middleware.JwtKey)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
