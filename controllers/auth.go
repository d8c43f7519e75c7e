package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/middleware"
	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user-role account and returns a signed bearer token.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	email := strings.ToLower(req.Email)

	var existing models.User
	err := config.DB.Where("username = ? OR email = ?", req.Username, email).First(&existing).Error
	if err == nil {
		badRequest(c, "This username or email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		internalError(c, "Registration failed", err)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    email,
		Role:     models.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		internalError(c, "Registration failed", err)
		return
	}
	if err := config.DB.Create(&user).Error; err != nil {
		internalError(c, "Registration failed", err)
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		internalError(c, "Registration failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  http.StatusCreated,
		"message": "User created successfully",
		"token":   token,
	})
}

// Login verifies credentials and returns a signed bearer token. The response
// never reveals whether the username or the password was wrong.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	user, err := services.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			badRequest(c, "Invalid credentials")
			return
		}
		internalError(c, "Login failed", err)
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		internalError(c, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Login successful",
		"token":   token,
	})
}

// Me returns the caller's current identity. Unlike every other guard it
// re-reads the user from storage, so role or email changes made after the
// token was issued show up here.
func Me(c *gin.Context) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "Access denied, missing or malformed token",
		})
		return
	}

	var user models.User
	if err := config.DB.First(&user, identity.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"email":     user.Email,
			"role":      user.Role,
			"createdAt": user.CreatedAt,
		},
	})
}
