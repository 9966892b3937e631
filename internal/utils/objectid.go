package utils

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectIDParam reads a 24-hex identifier from the named path parameter.
// On a malformed value it writes a 400 and returns false.
func ParseObjectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		InvalidIDResponse(c)
		return primitive.NilObjectID, false
	}
	return id, true
}
