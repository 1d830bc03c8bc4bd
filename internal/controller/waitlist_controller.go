package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/service"
	"github.com/rs/zerolog/log"
)

type WaitlistController struct {
	waitlistSvc service.WaitlistService
}

func NewWaitlistController(waitlistSvc service.WaitlistService) *WaitlistController {
	return &WaitlistController{waitlistSvc: waitlistSvc}
}

// Signup godoc
// @Summary Join the waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body dto.WaitlistRequest true "Signup data"
// @Success 201 {object} dto.WaitlistSignupResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid signup data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /waitlist [post]
func (ctrl *WaitlistController) Signup(c *gin.Context) {
	var req dto.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind WaitlistRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.waitlistSvc.Signup(req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.WaitlistSignupResponse{
		Success: true,
		Message: "You're on the waitlist! We'll be in touch soon.",
	})
}

// Stats godoc
// @Summary Waitlist signup counts
// @Description Reader, author, and total counts. Reports zeros when the waitlist store is not provisioned yet.
// @Tags waitlist
// @Produce json
// @Success 200 {object} dto.WaitlistStatsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /waitlist [get]
func (ctrl *WaitlistController) Stats(c *gin.Context) {
	stats, err := ctrl.waitlistSvc.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WaitlistStatsResponse{Stats: *stats})
}
