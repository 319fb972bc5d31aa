package middleware

import (
	"net/http"

	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// RequireHost gates routes to users who may list cars. Runs after
// JWTAuthUserMiddleware.
func RequireHost(repo userRepo.UserRepository) gin.HandlerFunc {
	return requireRole(repo, func(role models.UserRole) bool { return role.CanHost() },
		"Host access required")
}

// RequireAdmin gates routes to admin accounts.
func RequireAdmin(repo userRepo.UserRepository) gin.HandlerFunc {
	return requireRole(repo, func(role models.UserRole) bool { return role == models.RoleAdmin },
		"Admin access required")
}

func requireRole(repo userRepo.UserRepository, allowed func(models.UserRole) bool, denial string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		usr, err := repo.GetByIDWithProjection(userID, bson.M{"role": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if !allowed(usr.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": denial})
			return
		}

		c.Set("userRole", string(usr.Role))
		c.Next()
	}
}
