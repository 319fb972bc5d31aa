package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

const authCacheTTL = 30 * 24 * time.Hour

// JWTAuthUserMiddleware authenticates requests with a Bearer token. The
// token's hash must match the user's current session hash, checked against
// the Redis auth cache first and the database on a miss. On success the
// user ID lands in the context under "userID".
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		computedHash := utils.HashToken(tokenString)

		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID
		cachedHash, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session was revoked"})
				return
			}
		case err == redis.Nil:
			// Cache miss: fall back to the stored hash and refill the cache.
			usr, dbErr := repo.GetByIDWithProjection(userID, bson.M{"token_hash": 1, "is_active": 1})
			if dbErr != nil || usr == nil || usr.TokenHash == "" || usr.TokenHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session was revoked"})
				return
			}
			if !usr.IsActive {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
				return
			}
			_ = utils.GetAuthCacheClient().Set(ctx, cacheKey, usr.TokenHash, authCacheTTL).Err()
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authorization backend unavailable"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
