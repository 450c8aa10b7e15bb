package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/response"
)

// TutorHandler exposes the tutor CRUD endpoints.
type TutorHandler struct {
	tutores *application.TutorService
}

// NewTutorHandler creates a new TutorHandler.
func NewTutorHandler(tutores *application.TutorService) *TutorHandler {
	return &TutorHandler{tutores: tutores}
}

// RegisterRoutes registers the tutor routes on the router group.
func (h *TutorHandler) RegisterRoutes(router *gin.RouterGroup) {
	tutores := router.Group("/tutores")
	{
		tutores.POST("", h.Create)
		tutores.GET("", h.ListAll)
		tutores.GET("/:id", h.Get)
		tutores.PUT("/:id", h.Update)
		tutores.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /tutores.
func (h *TutorHandler) Create(c *gin.Context) {
	var req application.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.tutores.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// Get handles GET /tutores/:id.
func (h *TutorHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	dto, err := h.tutores.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListAll handles GET /tutores.
func (h *TutorHandler) ListAll(c *gin.Context) {
	dtos, err := h.tutores.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Update handles PUT /tutores/:id.
func (h *TutorHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req application.TutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.tutores.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /tutores/:id.
func (h *TutorHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.tutores.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
