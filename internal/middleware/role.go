package middleware

import (
	"net/http"

	"tallervehicular/internal/domain"
	"tallervehicular/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAnyRole ensures the authenticated user holds one of the given roles.
func RequireAnyRole(roles ...domain.RolUsuario) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		actual := domain.RolUsuario(role.(string))
		for _, r := range roles {
			if actual == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly middleware requires the ADMIN role
func AdminOnly() gin.HandlerFunc {
	return RequireAnyRole(domain.RolAdmin)
}

// InventarioWrite gates part and movement mutations: technicians get a
// read-only inventory view.
func InventarioWrite() gin.HandlerFunc {
	return RequireAnyRole(domain.RolAdmin, domain.RolAlmacen)
}
