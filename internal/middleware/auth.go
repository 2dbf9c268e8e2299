package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dexianlabs/pastelaria-api/internal/config"
)

const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

// RevokedTokenKey is the denylist entry for a logged-out token's jti.
func RevokedTokenKey(jti string) string {
	return "revoked:" + jti
}

func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthenticated(c)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthenticated(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		userID, ok1 := claims["sub"].(float64)
		userType, ok2 := claims["type"].(float64)
		jti, _ := claims["jti"].(string)
		exp, _ := claims["exp"].(float64)
		if !ok1 || !ok2 {
			abortUnauthenticated(c)
			return
		}

		if rdb != nil && jti != "" {
			n, err := rdb.Exists(c.Request.Context(), RevokedTokenKey(jti)).Result()
			if err == nil && n > 0 {
				abortUnauthenticated(c)
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserType, int(userType))
		c.Set(ContextTokenID, jti)
		c.Set(ContextTokenExp, int64(exp))

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}
