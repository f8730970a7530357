package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/pkg/responses"
	"github.com/RyanLee0396/SVDiscordBot/pkg/token"
)

// AuthMiddleware validates the bearer token issued to the presentation adapter
// and stores the caller identity and roles in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.Unauthorized(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			responses.Unauthorized(c, "Invalid or expired token: "+err.Error())
			return
		}

		c.Set(common.ContextIdentityKey, common.Identity{ID: claims.Subject, Name: claims.DisplayName})
		c.Set(common.ContextRolesKey, claims.Roles)
		c.Next()
	}
}
