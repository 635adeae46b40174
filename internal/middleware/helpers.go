package middleware

import "github.com/gin-gonic/gin"

// Username returns the authenticated caller's username, if any.
func Username(c *gin.Context) (string, bool) {
	v, ok := c.Get("username")
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// IsAdmin reports whether the authenticated caller has the Admin role.
func IsAdmin(c *gin.Context) bool {
	v, ok := c.Get("role")
	if !ok {
		return false
	}
	role, ok := v.(string)
	return ok && role == "Admin"
}
