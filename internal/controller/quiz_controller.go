package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Open a new quiz session with the ordered question list for a language
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.StartQuizRequest true "Language selection"
// @Success 201 {object} dto.QuizSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Questions could not be loaded"
// @Router /quiz/sessions [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	var req dto.StartQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartQuizRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.quizSvc.StartSession(req.Language)
	if err != nil {
		log.Error().Err(err).Str("language", req.Language).Msg("Failed to start quiz session")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load quiz questions. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession godoc
// @Summary Get a quiz session
// @Description Current state, cursor, and question list of a live session
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz session id"
// @Success 200 {object} dto.QuizSessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id} [get]
func (ctrl *QuizController) GetSession(c *gin.Context) {
	resp, err := ctrl.quizSvc.GetSession(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Record an answer for a question in the session. Re-answering overwrites the previous value.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz session id"
// @Param request body dto.SubmitAnswerRequest true "Answer payload"
// @Success 200 {object} quiz.Progress
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown question"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id}/answers [post]
func (ctrl *QuizController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	progress, err := ctrl.quizSvc.SubmitAnswer(c.Param("id"), req.QuestionID, req.Answer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// Advance godoc
// @Summary Advance the quiz
// @Description Move to the next question; advancing past the last question completes the session and returns the collected answers
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz session id"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id}/advance [post]
func (ctrl *QuizController) Advance(c *gin.Context) {
	resp, err := ctrl.quizSvc.Advance(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Retreat godoc
// @Summary Go back one question
// @Description Move the cursor back one question; at the first question this is a no-op
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz session id"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id}/retreat [post]
func (ctrl *QuizController) Retreat(c *gin.Context) {
	resp, err := ctrl.quizSvc.Retreat(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Restart godoc
// @Summary Restart the quiz
// @Description Discard the session and its local state. Previously stored answer rows are kept.
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz session id"
// @Success 204 "Session discarded"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /quiz/sessions/{id} [delete]
func (ctrl *QuizController) Restart(c *gin.Context) {
	if err := ctrl.quizSvc.Restart(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
