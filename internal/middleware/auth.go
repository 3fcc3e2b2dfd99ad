package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/service"
)

const authContextKey = "examgate.auth"

// RequireAuth resolves the gateway bearer token into an auth.Context and
// attaches it to the request. Missing or stale tokens stop here with 401.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		ac, err := authService.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Your session has expired, please log in again"})
			return
		}
		c.Set(authContextKey, ac)
		c.Next()
	}
}

// RequireRole guards role-specific route groups. It expects RequireAuth to
// have run first.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac := AuthContext(c)
		if ac == nil || !strings.EqualFold(ac.Role, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "This action is not available for your role"})
			return
		}
		c.Next()
	}
}

// AuthContext returns the request's auth context, or nil outside
// authenticated routes.
func AuthContext(c *gin.Context) *auth.Context {
	value, ok := c.Get(authContextKey)
	if !ok {
		return nil
	}
	ac, _ := value.(*auth.Context)
	return ac
}
