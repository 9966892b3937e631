package handlers

import (
	"errors"

	"estatehub/internal/services"
	"estatehub/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP taxonomy: not found is 404,
// a duplicate is 400 and anything else is a 500 echoing the cause.
func respondError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resource)
	case errors.Is(err, services.ErrDuplicate):
		utils.DuplicateResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c, err.Error())
	}
}

func bindDocument(c *gin.Context) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return nil, false
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, true
}
