package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/service"
	"github.com/rs/zerolog/log"
)

type CharacterController struct {
	generationSvc service.GenerationService
	characterSvc  service.CharacterService
}

func NewCharacterController(generationSvc service.GenerationService, characterSvc service.CharacterService) *CharacterController {
	return &CharacterController{generationSvc: generationSvc, characterSvc: characterSvc}
}

// GenerateCharacter godoc
// @Summary Generate a character from quiz answers
// @Description Send the collected answers to the generation workflow. Workflow failures return the fallback character with success=false rather than an error status.
// @Tags characters
// @Accept json
// @Produce json
// @Param request body dto.GenerateCharacterRequest true "Quiz answers, language, and optional session id"
// @Success 200 {object} dto.GenerateCharacterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /generate-character [post]
func (ctrl *CharacterController) GenerateCharacter(c *gin.Context) {
	var req dto.GenerateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateCharacterRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctrl.generationSvc.Generate(c.Request.Context(), req))
}

// ListCharacters godoc
// @Summary List public characters
// @Description Newest-first page of the public gallery. An empty first page is filled with sample characters.
// @Tags characters
// @Produce json
// @Param limit query int false "Page size (default 10, max 50)"
// @Param language query string false "Language code (default en)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.CharacterListResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed cursor"
// @Router /characters [get]
func (ctrl *CharacterController) ListCharacters(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := ctrl.characterSvc.ListPublic(limit, c.Query("language"), c.Query("cursor"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CountCharacters godoc
// @Summary Count public characters
// @Tags characters
// @Produce json
// @Param language query string false "Language code (default en)"
// @Success 200 {object} dto.CharacterCountResponse
// @Router /characters/count [get]
func (ctrl *CharacterController) CountCharacters(c *gin.Context) {
	count, err := ctrl.characterSvc.Count(c.Query("language"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CharacterCountResponse{Count: count})
}

// LatestCharacter godoc
// @Summary Get the newest public character
// @Description Returns the most recently generated public character, or a sample when none exist
// @Tags characters
// @Produce json
// @Param language query string false "Language code (default en)"
// @Success 200 {object} dto.CharacterResponse
// @Router /characters/random [get]
func (ctrl *CharacterController) LatestCharacter(c *gin.Context) {
	resp, err := ctrl.characterSvc.Latest(c.Query("language"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCharacter godoc
// @Summary Get a character by share id
// @Tags characters
// @Produce json
// @Param share_id path string true "Share id"
// @Success 200 {object} dto.CharacterResponse
// @Failure 404 {object} dto.ErrorResponse "Character not found"
// @Router /characters/{share_id} [get]
func (ctrl *CharacterController) GetCharacter(c *gin.Context) {
	resp, err := ctrl.characterSvc.GetByShareID(c.Param("share_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecordView godoc
// @Summary Record a character view
// @Description Bumps the view counter. Always succeeds; counter updates are best effort.
// @Tags characters
// @Produce json
// @Param share_id path string true "Share id"
// @Success 204 "View recorded"
// @Router /characters/{share_id}/view [post]
func (ctrl *CharacterController) RecordView(c *gin.Context) {
	ctrl.characterSvc.RecordView(c.Param("share_id"))
	c.Status(http.StatusNoContent)
}

// RecordShare godoc
// @Summary Record a character share
// @Description Bumps the share counter. Always succeeds; counter updates are best effort.
// @Tags characters
// @Produce json
// @Param share_id path string true "Share id"
// @Success 204 "Share recorded"
// @Router /characters/{share_id}/share [post]
func (ctrl *CharacterController) RecordShare(c *gin.Context) {
	ctrl.characterSvc.RecordShare(c.Param("share_id"))
	c.Status(http.StatusNoContent)
}

// LikeCharacter godoc
// @Summary Like a character
// @Description Bumps the like counter once per session per character
// @Tags characters
// @Accept json
// @Produce json
// @Param share_id path string true "Share id"
// @Param request body dto.LikeRequest true "Session id of the liker"
// @Success 200 {object} dto.LikeResponse
// @Failure 400 {object} dto.ErrorResponse "Missing session id"
// @Router /characters/{share_id}/like [post]
func (ctrl *CharacterController) LikeCharacter(c *gin.Context) {
	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind LikeRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.characterSvc.Like(c.Param("share_id"), req.SessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
