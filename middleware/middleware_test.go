package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func identityProbe() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var got uint
	r := gin.New()
	r.Use(Identify())
	r.GET("/probe", func(c *gin.Context) {
		if id, ok := CurrentUser(c); ok {
			got = id
		}
		c.Status(http.StatusOK)
	})
	return r, &got
}

func signed(t *testing.T, claims jwt.MapClaims, key []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestIdentifySetsUser(t *testing.T) {
	r, got := identityProbe()
	token := signed(t, jwt.MapClaims{
		UserKey: 42,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, JwtKey)

	for _, header := range []string{token, "Bearer " + token} {
		*got = 0
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if *got != 42 {
			t.Errorf("identity = %d, want 42", *got)
		}
	}
}

func TestIdentifyAnonymousPassesThrough(t *testing.T) {
	r, got := identityProbe()

	badTokens := []string{
		"",
		"not-a-token",
		signed(t, jwt.MapClaims{UserKey: 42, "exp": time.Now().Add(time.Hour).Unix()},
			[]byte("wrong key")),
		signed(t, jwt.MapClaims{UserKey: 42, "exp": time.Now().Add(-time.Hour).Unix()},
			JwtKey), // expired
	}
	for _, token := range badTokens {
		*got = 0
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("request with token %q aborted with %d", token, w.Code)
		}
		if *got != 0 {
			t.Errorf("token %q produced identity %d, want anonymous", token, *got)
		}
	}
}
