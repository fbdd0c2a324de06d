package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/amazing-thailand/photo-service/config"
	"github.com/amazing-thailand/photo-service/utils"
)

// AuthMiddleware resolves the caller from the access token when one is
// present. Requests without a valid token pass through anonymously; handlers
// that need the identity read it from the context.
func AuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		token, err := utils.ParseToken(tokenString, cfg)
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			utils.InjectClaimsToContext(c, claims)
		}
		c.Next()
	}
}
