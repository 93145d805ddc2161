package middleware

import (
	"net/http"
	"strings"

	"laminasycortes/pkg"

	"github.com/gin-gonic/gin"
)

// OwnerIDKey holds the authenticated user id in the gin context. Empty or
// absent means the request is anonymous.
const OwnerIDKey = "owner_id"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// BearerAuth resolves the Authorization header into an owner identity.
//
// required selects the engine mode: when true, requests without a valid token
// are rejected with 401; when false (local single-user mode) they pass through
// anonymous and the quote engine attributes work to its sentinel author. A
// presented-but-invalid token is rejected in both modes.
func BearerAuth(tokens TokenVerifier, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			if required {
				appErr := pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			c.Next()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(OwnerIDKey, userID)
		c.Next()
	}
}

// OwnerID extracts the authenticated user id from the context, empty when
// anonymous.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}
