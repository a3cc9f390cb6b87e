package middleware

import (
	"net/http"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/jwt"
	"github.com/MashookhKhanlol/youtube-clone/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAuth validates the bearer access token and stores the caller's
// user id in the context under "user_id". Verification is signature+expiry
// only; it never touches storage.
func RequireAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAccessToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// CallerID reads the authenticated user id set by RequireAuth.
func CallerID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
