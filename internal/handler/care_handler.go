package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/response"
)

// CareHandler exposes the care-record CRUD and filter endpoints.
type CareHandler struct {
	cuidados *application.CareService
}

// NewCareHandler creates a new CareHandler.
func NewCareHandler(cuidados *application.CareService) *CareHandler {
	return &CareHandler{cuidados: cuidados}
}

// RegisterRoutes registers the care routes on the router group.
func (h *CareHandler) RegisterRoutes(router *gin.RouterGroup) {
	cuidados := router.Group("/cuidados")
	{
		cuidados.POST("", h.Create)
		cuidados.GET("", h.ListAll)
		cuidados.GET("/:id", h.Get)
		cuidados.PUT("/:id", h.Update)
		cuidados.DELETE("/:id", h.Delete)
		cuidados.GET("/pet/:idPet", h.ListByPet)
		cuidados.GET("/pet/:idPet/tipo/:tipo", h.ListByPetAndTipo)
		cuidados.GET("/tipo/:tipo", h.ListByTipo)
	}
}

// Create handles POST /cuidados.
func (h *CareHandler) Create(c *gin.Context) {
	var req application.CareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.cuidados.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// Get handles GET /cuidados/:id.
func (h *CareHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	dto, err := h.cuidados.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListAll handles GET /cuidados.
func (h *CareHandler) ListAll(c *gin.Context) {
	dtos, err := h.cuidados.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListByPet handles GET /cuidados/pet/:idPet.
func (h *CareHandler) ListByPet(c *gin.Context) {
	petID, ok := pathUUID(c, "idPet")
	if !ok {
		return
	}
	dtos, err := h.cuidados.ListByPet(c.Request.Context(), petID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListByTipo handles GET /cuidados/tipo/:tipo. The tipo segment accepts the
// same free-form spellings as the create payload.
func (h *CareHandler) ListByTipo(c *gin.Context) {
	dtos, err := h.cuidados.ListByTipo(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListByPetAndTipo handles GET /cuidados/pet/:idPet/tipo/:tipo.
func (h *CareHandler) ListByPetAndTipo(c *gin.Context) {
	petID, ok := pathUUID(c, "idPet")
	if !ok {
		return
	}
	dtos, err := h.cuidados.ListByPetAndTipo(c.Request.Context(), petID, c.Param("tipo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Update handles PUT /cuidados/:id.
func (h *CareHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req application.CareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.cuidados.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /cuidados/:id.
func (h *CareHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cuidados.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
