package service

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/quiz"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/makemymate/makemymate-api/internal/session"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	// StartSession loads the ordered question list for a language and opens a new
	// session on it. A store failure or an empty question set is a QuestionLoadError;
	// the caller retries manually, nothing retries on its own.
	StartSession(languageCode string) (*dto.QuizSessionResponse, error)
	GetSession(sessionID string) (*dto.QuizSessionResponse, error)
	SubmitAnswer(sessionID string, questionID uint, answer string) (*quiz.Progress, error)
	Advance(sessionID string) (*dto.AdvanceResponse, error)
	Retreat(sessionID string) (*dto.AdvanceResponse, error)
	// Restart discards the session and its persisted local state. Remote answer rows
	// are append-only and stay behind.
	Restart(sessionID string) error
}

type quizService struct {
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
	registry     *quiz.Registry
	stateStore   *session.Store
	analytics    AnalyticsService
}

func NewQuizService(questionRepo repository.QuestionRepository, responseRepo repository.ResponseRepository, registry *quiz.Registry, stateStore *session.Store, analytics AnalyticsService) QuizService {
	return &quizService{
		questionRepo: questionRepo,
		responseRepo: responseRepo,
		registry:     registry,
		stateStore:   stateStore,
		analytics:    analytics,
	}
}

func (s *quizService) StartSession(languageCode string) (*dto.QuizSessionResponse, error) {
	questions, err := s.questionRepo.FindByLanguage(languageCode)
	if err != nil {
		return nil, &QuestionLoadError{LanguageCode: languageCode, Err: err}
	}
	if len(questions) == 0 {
		return nil, &QuestionLoadError{LanguageCode: languageCode, Err: fmt.Errorf("no questions configured")}
	}

	sess := quiz.NewSession(languageCode, questions, s.persistAnswer)
	s.registry.Add(sess)
	sess.Begin()
	s.analytics.Track("quiz_started", sess.ID(), languageCode, map[string]interface{}{
		"questionCount": len(questions),
	})
	s.snapshot(sess)

	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionResponse(&questions[i]))
	}
	return &dto.QuizSessionResponse{
		SessionID: sess.ID(),
		State:     sess.State(),
		Cursor:    sess.Cursor(),
		Questions: out,
	}, nil
}

func (s *quizService) GetSession(sessionID string) (*dto.QuizSessionResponse, error) {
	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{Resource: "quiz session", Key: sessionID}
	}

	questions := sess.Questions()
	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, toQuestionResponse(&questions[i]))
	}
	return &dto.QuizSessionResponse{
		SessionID: sess.ID(),
		State:     sess.State(),
		Cursor:    sess.Cursor(),
		Questions: out,
	}, nil
}

func (s *quizService) SubmitAnswer(sessionID string, questionID uint, answer string) (*quiz.Progress, error) {
	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{Resource: "quiz session", Key: sessionID}
	}
	if err := sess.Answer(questionID, answer); err != nil {
		return nil, &ValidationError{Field: "question_id", Message: err.Error()}
	}
	s.snapshot(sess)
	progress := sess.Progress()
	return &progress, nil
}

func (s *quizService) Advance(sessionID string) (*dto.AdvanceResponse, error) {
	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{Resource: "quiz session", Key: sessionID}
	}

	wasCompleted := sess.State() == quiz.StateCompleted
	completed, answers := sess.Advance()
	s.snapshot(sess)

	resp := &dto.AdvanceResponse{
		Completed: completed,
		Cursor:    sess.Cursor(),
		Progress:  sess.Progress(),
	}
	if completed {
		resp.Answers = make([]dto.QuizAnswerDTO, 0, len(answers))
		for _, a := range answers {
			resp.Answers = append(resp.Answers, dto.QuizAnswerDTO{QuestionID: a.QuestionID, Answer: a.Value})
		}
		if !wasCompleted {
			s.analytics.Track("quiz_completed", sessionID, sess.LanguageCode(), map[string]interface{}{
				"answeredQuestions": len(answers),
			})
		}
	}
	return resp, nil
}

func (s *quizService) Retreat(sessionID string) (*dto.AdvanceResponse, error) {
	sess, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, &NotFoundError{Resource: "quiz session", Key: sessionID}
	}
	sess.Retreat()
	s.snapshot(sess)
	return &dto.AdvanceResponse{
		Completed: sess.State() == quiz.StateCompleted,
		Cursor:    sess.Cursor(),
		Progress:  sess.Progress(),
	}, nil
}

func (s *quizService) Restart(sessionID string) error {
	if _, ok := s.registry.Get(sessionID); !ok {
		return &NotFoundError{Resource: "quiz session", Key: sessionID}
	}
	s.registry.Remove(sessionID)
	if err := s.stateStore.Clear(sessionID); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Failed to clear session state on restart")
	}
	return nil
}

func (s *quizService) persistAnswer(sessionID string, questionID uint, value string, languageCode string) error {
	return s.responseRepo.Create(&model.CharacterResponse{
		SessionID:    sessionID,
		QuestionID:   questionID,
		Response:     value,
		LanguageCode: languageCode,
	})
}

// snapshot mirrors the session's local state into the state store. Best effort; the
// in-memory session stays authoritative while the process lives.
func (s *quizService) snapshot(sess *quiz.Session) {
	state, err := s.stateStore.Load(sess.ID())
	if err != nil {
		log.Warn().Err(err).Str("sessionID", sess.ID()).Msg("Failed to load session state for snapshot")
		return
	}
	state.Language = sess.LanguageCode()
	state.QuizCursor = sess.Cursor()
	state.QuizAnswers = make(map[uint]string)
	for _, a := range sess.Answers() {
		state.QuizAnswers[a.QuestionID] = a.Value
	}
	if err := s.stateStore.Save(state); err != nil {
		log.Warn().Err(err).Str("sessionID", sess.ID()).Msg("Failed to snapshot quiz session state")
	}
}

func toQuestionResponse(question *model.QuizQuestion) dto.QuestionResponse {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		log.Warn().Err(err).Msg("Failed to map quiz question to response")
	}
	if len(question.Options) > 0 {
		var options []string
		if err := json.Unmarshal(question.Options, &options); err != nil {
			log.Warn().Err(err).Uint("questionID", question.ID).Msg("Stored question options are not a string array")
		} else {
			resp.Options = options
		}
	}
	return resp
}
