package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/services"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.C = &config.Config{JWTSecret: "auth-test-secret"}

	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		identity, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": identity.Username})
	})
	r.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK})
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	w := doRequest(r, "/protected", "")
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	w := doRequest(r, "/protected", "not-a-real-token")
	c.Assert(w.Code, qt.Equals, http.StatusUnauthorized)
}

func TestRequireAuthValidToken(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	token, err := services.GenerateToken(&models.User{ID: 3, Username: "ash", Role: models.RoleUser})
	c.Assert(err, qt.IsNil)

	w := doRequest(r, "/protected", token)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, "ash")
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	token, err := services.GenerateToken(&models.User{ID: 3, Username: "ash", Role: models.RoleUser})
	c.Assert(err, qt.IsNil)

	w := doRequest(r, "/admin", token)
	c.Assert(w.Code, qt.Equals, http.StatusForbidden)
}

func TestRequireAdminAllowsAdminRole(t *testing.T) {
	c := qt.New(t)
	r := authTestRouter()

	token, err := services.GenerateToken(&models.User{ID: 1, Username: "oak", Role: models.RoleAdmin})
	c.Assert(err, qt.IsNil)

	w := doRequest(r, "/admin", token)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
}
