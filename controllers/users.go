package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/middleware"
	"github.com/pokecollect/pokedex-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		badRequest(c, "Invalid user id")
		return 0, false
	}
	return uint(id), true
}

// ListUsers returns every account, password hashes excluded. Admin only.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		internalError(c, "Failed to fetch users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"count":  len(users),
		"data":   users,
	})
}

// GetUser returns one account. Callers may fetch their own profile; admins
// may fetch anyone's.
func GetUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.CurrentUser(c)
	if identity.Role != models.RoleAdmin && identity.ID != id {
		forbidden(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c, "Failed to fetch user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   user,
	})
}

// UpdateUser edits username and email, self or admin. Only admins may change
// the role field.
func UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.CurrentUser(c)
	if identity.Role != models.RoleAdmin && identity.ID != id {
		forbidden(c)
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(c, "User not found")
			return
		}
		internalError(c, "Failed to fetch user", err)
		return
	}

	updates := map[string]interface{}{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = strings.ToLower(req.Email)
	}
	if req.Role != "" && identity.Role == models.RoleAdmin {
		updates["role"] = req.Role
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			internalError(c, "Failed to update user", err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "User updated successfully",
		"data":    user,
	})
}

// DeleteUser removes an account. Admin only.
func DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	res := config.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		internalError(c, "Failed to delete user", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		notFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "User deleted successfully",
	})
}
