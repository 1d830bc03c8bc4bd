package dto

// StartQuizRequest opens a new quiz session for one language.
type StartQuizRequest struct {
	Language string `json:"language" binding:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// QuizAnswerDTO is one (question, answer) pair inside a generation request. The JSON
// field names match the envelope the generation workflow expects.
type QuizAnswerDTO struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type GenerateCharacterRequest struct {
	QuizAnswers []QuizAnswerDTO `json:"quizAnswers" binding:"required,dive"`
	Language    string          `json:"language" binding:"required"`
	// SessionID carries the quiz session id forward so answering and generation stay
	// correlated; a fresh id is minted when the caller has none.
	SessionID string `json:"sessionId"`
}

type WaitlistRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Consent   bool   `json:"consent"`
}

type LikeRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}
