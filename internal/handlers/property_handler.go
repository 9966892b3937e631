package handlers

import (
	"estatehub/internal/models"
	"estatehub/internal/services"
	"estatehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService services.PropertyService
}

func NewPropertyHandler(propertyService services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// ListProperties returns every listing.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListProperties(c.Request.Context())
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.OKResponse(c, properties)
}

// GetProperty returns one listing by id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	property, err := h.propertyService.GetProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.OKResponse(c, property)
}

// ListOwnerProperties returns the listings posted by :email.
func (h *PropertyHandler) ListOwnerProperties(c *gin.Context) {
	properties, err := h.propertyService.ListOwnerProperties(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.OKResponse(c, properties)
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.propertyService.CreateProperty(c.Request.Context(), models.Property(body))
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	body, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.propertyService.UpdateProperty(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.OKResponse(c, result)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.propertyService.DeleteProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Property")
		return
	}

	utils.OKResponse(c, result)
}
