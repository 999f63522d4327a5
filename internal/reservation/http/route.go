package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers reservation routes. Everything requires a
// signed-in user; listing all reservations and forcing a status are
// admin-only. Ownership on individual reservations is enforced in the
// service layer.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")
	group.Use(authMiddleware)

	group.GET("/my", h.ListMy)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.POST("/:id/cancel", h.Cancel)
	group.DELETE("/:id", h.Delete)

	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}
