package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupAuthRouter starts a throwaway postgres container and returns a router
// with the auth routes bound, mirroring the live route table.
func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pokedex_test"),
		tcpostgres.WithUsername("pokedex"),
		tcpostgres.WithPassword("pokedex"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Pokemon{}, &models.UserCard{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DB = db
	config.C = &config.Config{JWTSecret: "integration-test-secret"}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", Register)
	r.POST("/api/auth/login", Login)
	return r, db
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateConflict(t *testing.T) {
	c := qt.New(t)
	r, db := setupAuthRouter(t)

	w := postJSON(r, "/api/auth/register", `{"username":"ash","email":"ash@pallet.town","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusCreated)
	c.Assert(w.Body.String(), qt.Contains, `"token"`)

	// same username, different email
	w = postJSON(r, "/api/auth/register", `{"username":"ash","email":"other@pallet.town","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)

	// same email, different username
	w = postJSON(r, "/api/auth/register", `{"username":"ketchum","email":"ash@pallet.town","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)

	// email uniqueness is case-insensitive, the stored value is lowercased
	w = postJSON(r, "/api/auth/register", `{"username":"ketchum","email":"ASH@PALLET.TOWN","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusBadRequest)

	// the duplicates never created a second record
	var count int64
	c.Assert(db.Model(&models.User{}).Count(&count).Error, qt.IsNil)
	c.Assert(count, qt.Equals, int64(1))

	var user models.User
	c.Assert(db.Where("username = ?", "ash").First(&user).Error, qt.IsNil)
	c.Assert(user.Role, qt.Equals, models.RoleUser)
	c.Assert(user.Email, qt.Equals, "ash@pallet.town")
	c.Assert(user.Password, qt.Not(qt.Equals), "pikachu123")
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	c := qt.New(t)
	r, _ := setupAuthRouter(t)

	w := postJSON(r, "/api/auth/register", `{"username":"ash","email":"ash@pallet.town","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusCreated)

	wrongPassword := postJSON(r, "/api/auth/login", `{"username":"ash","password":"not-the-password"}`)
	unknownUser := postJSON(r, "/api/auth/login", `{"username":"nobody","password":"not-the-password"}`)

	c.Assert(wrongPassword.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(unknownUser.Code, qt.Equals, http.StatusBadRequest)

	// identical bodies for both failure modes
	c.Assert(wrongPassword.Body.String(), qt.Equals, unknownUser.Body.String())
	c.Assert(wrongPassword.Body.String(), qt.Contains, "Invalid credentials")

	// the right password still works
	w = postJSON(r, "/api/auth/login", `{"username":"ash","password":"pikachu123"}`)
	c.Assert(w.Code, qt.Equals, http.StatusOK)
	c.Assert(w.Body.String(), qt.Contains, `"token"`)
}
