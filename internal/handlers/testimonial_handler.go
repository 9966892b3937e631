package handlers

import (
	"estatehub/internal/models"
	"estatehub/internal/services"
	"estatehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService services.TestimonialService
}

func NewTestimonialHandler(testimonialService services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		testimonialService: testimonialService,
	}
}

func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.ListTestimonials(c.Request.Context())
	if err != nil {
		respondError(c, err, "Testimonial")
		return
	}

	utils.OKResponse(c, testimonials)
}

func (h *TestimonialHandler) GetUserTestimonial(c *gin.Context) {
	testimonial, err := h.testimonialService.GetTestimonialByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Testimonial")
		return
	}

	utils.OKResponse(c, testimonial)
}

func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.testimonialService.CreateTestimonial(c.Request.Context(), models.Testimonial(body))
	if err != nil {
		respondError(c, err, "Testimonial")
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	body, ok := bindDocument(c)
	if !ok {
		return
	}

	result, err := h.testimonialService.UpdateTestimonial(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "Testimonial")
		return
	}

	utils.OKResponse(c, result)
}

func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.testimonialService.DeleteTestimonial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Testimonial")
		return
	}

	utils.OKResponse(c, result)
}
