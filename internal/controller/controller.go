package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/service"
	"github.com/rs/zerolog/log"
)

// respondServiceError maps service-layer errors onto HTTP statuses. Anything not
// recognized is a 500 with a generic message; details stay in the log.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message})
		return
	}

	var duplicateErr *service.DuplicateEmailError
	if errors.As(err, &duplicateErr) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "This email is already on the waitlist"})
		return
	}

	if _, ok := err.(interface{ NotFound() }); ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
