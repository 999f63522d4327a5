package http

import (
	"net/http"

	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/file"
	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/pkg/response"
	"github.com/campusbook/reservation-backend/internal/space"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     space.Service
	fileService file.Service
}

func NewHandler(service space.Service, fileService file.Service) *Handler {
	return &Handler{
		service:     service,
		fileService: fileService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListSpacesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := space.Filter{
		SpaceTypeID:     req.SpaceTypeID,
		IncludeInactive: req.IncludeInactive,
		Page:            req.Page,
		PageSize:        req.PageSize,
	}

	spaces, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SpaceResponse, len(spaces))
	for i, sp := range spaces {
		items[i] = NewResponse(sp)
	}

	page, pageSize := req.Page, req.PageSize
	if pageSize < 1 {
		page, pageSize = 1, total
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	sp, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(sp))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sp, err := h.service.Create(c.Request.Context(), space.CreateRequest{
		SpaceTypeID:  body.SpaceTypeID,
		Name:         body.Name,
		Description:  body.Description,
		Location:     body.Location,
		Capacity:     body.Capacity,
		PricePerHour: body.PricePerHour,
		Equipment:    body.Equipment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(sp))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	sp, err := h.service.Update(c.Request.Context(), req.ID, space.UpdateRequest{
		SpaceTypeID:  body.SpaceTypeID,
		Name:         body.Name,
		Description:  body.Description,
		Location:     body.Location,
		Capacity:     body.Capacity,
		PricePerHour: body.PricePerHour,
		Equipment:    body.Equipment,
		IsActive:     body.IsActive,
		ImageURL:     body.ImageURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(sp))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage stores the uploaded image through the file service and
// points the space's image URL at it.
func (h *Handler) UploadImage(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), header, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	sp, err := h.service.SetImage(c.Request.Context(), req.ID, file.FileURL(f.ID))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(sp))
}
