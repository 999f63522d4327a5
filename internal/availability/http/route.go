package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers availability schedule routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/availability")

	group.GET("", h.List)
	group.GET("/check", h.Check)

	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}
