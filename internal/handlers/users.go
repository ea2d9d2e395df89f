package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chachabrian/profast-backend/internal/database"
	"github.com/chachabrian/profast-backend/internal/models"
)

// SearchUsers matches ?email= as a case-insensitive substring.
func SearchUsers(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("email")
		if query == "" {
			badRequest(c, "Missing email query")
			return
		}

		list, err := users.Search(c.Request.Context(), query)
		if err != nil {
			failure(c, err, "Error searching users")
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

func GetUserRole(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.Param("email"))
		if email == "" {
			badRequest(c, "Email is required")
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, database.ErrNotFound) {
			notFound(c, "User not found")
			return
		}
		if err != nil {
			failure(c, err, "Failed to get role")
			return
		}

		c.JSON(http.StatusOK, gin.H{"role": user.EffectiveRole()})
	}
}

// CreateUser inserts the user unless one with the same email exists.
func CreateUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := bindDocument(c)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		email, _ := doc["email"].(string)
		if strings.TrimSpace(email) == "" {
			badRequest(c, "Email is required")
			return
		}

		ctx := c.Request.Context()
		_, err = users.FindByEmail(ctx, email)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "User already exists", "inserted": false})
			return
		case !errors.Is(err, database.ErrNotFound):
			failure(c, err, "Failed to create user")
			return
		}

		if role, _ := doc["role"].(string); role == "" {
			doc["role"] = string(models.RoleUser)
		}
		if _, ok := doc["created_at"]; !ok {
			doc["created_at"] = time.Now().UTC()
		}

		result, err := users.Create(ctx, doc)
		if errors.Is(err, database.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists", "inserted": false})
			return
		}
		if err != nil {
			failure(c, err, "Failed to create user")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":    "User created",
			"inserted":   true,
			"insertedId": result.InsertedID,
		})
	}
}

type updateRoleRequest struct {
	Role models.Role `json:"role" binding:"required"`
}

// UpdateUserRole sets the role of a user to admin or user.
func UpdateUserRole(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil || !models.AssignableRole(req.Role) {
			badRequest(c, "Invalid role")
			return
		}

		result, err := users.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
		if err != nil {
			failure(c, err, "Failed to update user role")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
