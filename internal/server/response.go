package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"max.ks1230/finances-tracker/internal/model/customerr"
)

const invalidBodyMessage = "invalid request body"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// handleServiceError maps service errors to a status; action completes "Failed to ...".
func handleServiceError(c *gin.Context, err error, action string) {
	switch {
	case customerr.IsValidation(err):
		respondError(c, http.StatusBadRequest, customerr.Message(err))
	case customerr.IsNotFound(err):
		respondError(c, http.StatusNotFound, notFoundMessage(err))
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, "Failed to "+action)
	}
}

func notFoundMessage(err error) string {
	var nf *customerr.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "not found"
}
