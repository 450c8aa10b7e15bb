package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/response"
)

// PetHandler exposes the pet CRUD and the adopt/return lifecycle endpoints.
type PetHandler struct {
	pets *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(pets *application.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

// RegisterRoutes registers the pet routes on the router group.
func (h *PetHandler) RegisterRoutes(router *gin.RouterGroup) {
	pets := router.Group("/pets")
	{
		pets.POST("", h.Create)
		pets.GET("", h.ListAll)
		pets.GET("/disponiveis", h.ListDisponiveis)
		pets.GET("/adotados", h.ListAdotados)
		pets.GET("/tutor/:idTutor", h.ListByTutor)
		pets.GET("/:id", h.Get)
		pets.PUT("/:id", h.Update)
		pets.DELETE("/:id", h.Delete)
		pets.PUT("/:id/adotar", h.Adopt)
		pets.PUT("/:id/devolver", h.Return)
	}
}

// Create handles POST /pets.
func (h *PetHandler) Create(c *gin.Context) {
	var req application.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.pets.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

// Get handles GET /pets/:id.
func (h *PetHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	dto, err := h.pets.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListAll handles GET /pets.
func (h *PetHandler) ListAll(c *gin.Context) {
	dtos, err := h.pets.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListDisponiveis handles GET /pets/disponiveis.
func (h *PetHandler) ListDisponiveis(c *gin.Context) {
	dtos, err := h.pets.ListDisponiveis(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListAdotados handles GET /pets/adotados.
func (h *PetHandler) ListAdotados(c *gin.Context) {
	dtos, err := h.pets.ListAdotados(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// ListByTutor handles GET /pets/tutor/:idTutor.
func (h *PetHandler) ListByTutor(c *gin.Context) {
	tutorID, ok := pathUUID(c, "idTutor")
	if !ok {
		return
	}
	dtos, err := h.pets.ListByTutor(c.Request.Context(), tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// Update handles PUT /pets/:id (cadastral data only).
func (h *PetHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req application.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	dto, err := h.pets.UpdateRegistration(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Adopt handles PUT /pets/:id/adotar?tutorId=<uuid>.
func (h *PetHandler) Adopt(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	tutorID, err := uuid.Parse(c.Query("tutorId"))
	if err != nil {
		response.BadRequest(c, "Parâmetro tutorId inválido: é esperado um uuid.")
		return
	}
	dto, err := h.pets.Adopt(c.Request.Context(), id, tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Return handles PUT /pets/:id/devolver.
func (h *PetHandler) Return(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	dto, err := h.pets.Return(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// Delete handles DELETE /pets/:id.
func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.pets.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathUUID parses a uuid path parameter, writing a 400 when malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Parâmetro "+name+" inválido: é esperado um uuid.")
		return uuid.Nil, false
	}
	return id, true
}
