package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petcare-br/service-shelter/internal/application"
	"github.com/petcare-br/service-shelter/internal/response"
)

// AdoptionHandler exposes the read-only adoption history endpoints.
type AdoptionHandler struct {
	adocoes *application.AdoptionService
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(adocoes *application.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adocoes: adocoes}
}

// RegisterRoutes registers the adoption history routes on the router group.
func (h *AdoptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	adocoes := router.Group("/adocoes")
	{
		adocoes.GET("/pet/:idPet", h.ListByPet)
		adocoes.GET("/pet/:idPet/ativa", h.FindActiveByPet)
		adocoes.GET("/tutor/:idTutor", h.ListByTutor)
	}
}

// ListByPet handles GET /adocoes/pet/:idPet.
func (h *AdoptionHandler) ListByPet(c *gin.Context) {
	petID, ok := pathUUID(c, "idPet")
	if !ok {
		return
	}
	dtos, err := h.adocoes.ListByPet(c.Request.Context(), petID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// FindActiveByPet handles GET /adocoes/pet/:idPet/ativa. Responds 204 when
// the pet has no open adoption.
func (h *AdoptionHandler) FindActiveByPet(c *gin.Context) {
	petID, ok := pathUUID(c, "idPet")
	if !ok {
		return
	}
	dto, err := h.adocoes.FindActiveByPet(c.Request.Context(), petID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if dto == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto)
}

// ListByTutor handles GET /adocoes/tutor/:idTutor.
func (h *AdoptionHandler) ListByTutor(c *gin.Context) {
	tutorID, ok := pathUUID(c, "idTutor")
	if !ok {
		return
	}
	dtos, err := h.adocoes.ListByTutor(c.Request.Context(), tutorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}
