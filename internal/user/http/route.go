package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers user directory routes. All of them are admin-only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	group.Use(authMiddleware, adminMiddleware)
	{
		group.GET("", h.List)
		group.GET("/by-email", h.GetByEmail)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
