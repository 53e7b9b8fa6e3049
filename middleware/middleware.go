package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JwtKey signs and verifies session tokens. main overrides it from the
// environment at startup.
var JwtKey = []byte("my_secret_key")

// UserKey is the gin context key carrying the authenticated user id.
const UserKey = "user_id"

// Identify extracts the requester's identity from the Authorization
// header and stores it in the context. It never aborts: reads are public,
// and write handlers answer 403 themselves when no identity is present.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		if tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return JwtKey, nil
		})

		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}
		if raw, ok := claims[UserKey].(float64); ok {
			c.Set(UserKey, uint(raw))
		}
		c.Next()
	}
}

// CurrentUser returns the identity set by Identify, zero and false for
// anonymous requests.
func CurrentUser(c *gin.Context) (uint, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
