package middleware

import "github.com/gin-gonic/gin"

// Keys used to store the authenticated identity in the request context.
const (
	userIDKey = contextKey("userID")
	orgIDKey  = contextKey("organizationID")
	roleKey   = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, userIDKey)
}

// GetOrganizationIDFromContext retrieves the authenticated user's organization
// ID (the tenant every data access is scoped to) from the Gin context.
func GetOrganizationIDFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, orgIDKey)
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin
// context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	return stringFromRequestContext(c, roleKey)
}

func stringFromRequestContext(c *gin.Context, key contextKey) (string, bool) {
	val := c.Request.Context().Value(key)
	if val == nil {
		return "", false
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
