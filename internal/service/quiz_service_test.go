package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/quiz"
	"github.com/makemymate/makemymate-api/internal/session"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuestionRepo struct {
	questions []model.QuizQuestion
	err       error
}

func (s *stubQuestionRepo) FindByLanguage(languageCode string) ([]model.QuizQuestion, error) {
	return s.questions, s.err
}

type stubResponseRepo struct {
	mu      sync.Mutex
	created []*model.CharacterResponse
}

func (s *stubResponseRepo) Create(response *model.CharacterResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, response)
	return nil
}

func (s *stubResponseRepo) FindBySessionID(sessionID string) ([]model.CharacterResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.CharacterResponse
	for _, r := range s.created {
		if r.SessionID == sessionID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *stubResponseRepo) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.created)
}

func quizQuestionFixture() []model.QuizQuestion {
	return []model.QuizQuestion{
		{ID: 1, Section: "character", QuestionText: "Pick a vibe", QuestionType: "multiple-choice", Options: []byte(`["dark","light"]`), QuestionOrder: 1, LanguageCode: "en"},
		{ID: 2, Section: "appearance", QuestionText: "Rate intensity", QuestionType: "slider", QuestionOrder: 2, LanguageCode: "en"},
	}
}

type quizFixture struct {
	svc          QuizService
	questionRepo *stubQuestionRepo
	responseRepo *stubResponseRepo
	analytics    *stubAnalytics
	store        *session.Store
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()
	store, err := session.NewStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)

	f := &quizFixture{
		questionRepo: &stubQuestionRepo{questions: quizQuestionFixture()},
		responseRepo: &stubResponseRepo{},
		analytics:    &stubAnalytics{},
		store:        store,
	}
	f.svc = NewQuizService(f.questionRepo, f.responseRepo, quiz.NewRegistry(), store, f.analytics)
	return f
}

func TestStartSession(t *testing.T) {
	f := newQuizFixture(t)

	resp, err := f.svc.StartSession("en")
	require.NoError(t, err)
	assert.Regexp(t, `^quiz-\d+-.{9}$`, resp.SessionID)
	assert.Equal(t, quiz.StateInProgress, resp.State)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, []string{"dark", "light"}, resp.Questions[0].Options)
	assert.Contains(t, f.analytics.events, "quiz_started")
}

func TestStartSessionStoreFailure(t *testing.T) {
	f := newQuizFixture(t)
	f.questionRepo.err = errors.New("connection refused")

	_, err := f.svc.StartSession("en")
	var loadErr *QuestionLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "en", loadErr.LanguageCode)
}

func TestStartSessionNoQuestions(t *testing.T) {
	f := newQuizFixture(t)
	f.questionRepo.questions = nil

	_, err := f.svc.StartSession("en")
	var loadErr *QuestionLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestGetSession(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	_, err = f.svc.Advance(started.SessionID)
	require.NoError(t, err)

	resp, err := f.svc.GetSession(started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, started.SessionID, resp.SessionID)
	assert.Equal(t, quiz.StateInProgress, resp.State)
	assert.Equal(t, 1, resp.Cursor)
	assert.Len(t, resp.Questions, 2)

	_, err = f.svc.GetSession("quiz-0-missing")
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)
}

func TestSubmitAnswerPersistsRemotely(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	progress, err := f.svc.SubmitAnswer(started.SessionID, 1, "dark")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.AnsweredQuestions)

	// The answer row lands in the store without blocking the caller.
	require.Eventually(t, func() bool { return f.responseRepo.count() == 1 }, time.Second, 10*time.Millisecond)
	rows, err := f.responseRepo.FindBySessionID(started.SessionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dark", rows[0].Response)
	assert.Equal(t, "en", rows[0].LanguageCode)
}

func TestSubmitAnswerUnknownSession(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.SubmitAnswer("quiz-0-missing", 1, "dark")
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(started.SessionID, 99, "dark")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAdvanceThroughCompletion(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(started.SessionID, 1, "dark")
	require.NoError(t, err)
	_, err = f.svc.SubmitAnswer(started.SessionID, 2, "4")
	require.NoError(t, err)

	resp, err := f.svc.Advance(started.SessionID)
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Equal(t, 1, resp.Cursor)

	resp, err = f.svc.Advance(started.SessionID)
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.Len(t, resp.Answers, 2)
	assert.Equal(t, uint(1), resp.Answers[0].QuestionID)
	assert.Contains(t, f.analytics.events, "quiz_completed")

	// Completion is only reported to analytics once.
	_, err = f.svc.Advance(started.SessionID)
	require.NoError(t, err)
	completions := 0
	for _, e := range f.analytics.events {
		if e == "quiz_completed" {
			completions++
		}
	}
	assert.Equal(t, 1, completions)
}

func TestRetreat(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	_, err = f.svc.Advance(started.SessionID)
	require.NoError(t, err)

	resp, err := f.svc.Retreat(started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cursor)

	// Already at the first question; retreat holds position.
	resp, err = f.svc.Retreat(started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cursor)
}

func TestRestartDiscardsSessionAndState(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(started.SessionID, 1, "dark")
	require.NoError(t, err)

	require.NoError(t, f.svc.Restart(started.SessionID))

	// The session is gone from the registry.
	_, err = f.svc.SubmitAnswer(started.SessionID, 1, "dark")
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)

	// Local state is cleared too.
	state, err := f.store.Load(started.SessionID)
	require.NoError(t, err)
	assert.Empty(t, state.QuizAnswers)

	// Restarting twice reports the missing session.
	err = f.svc.Restart(started.SessionID)
	_, ok = err.(interface{ NotFound() })
	assert.True(t, ok)
}

func TestSnapshotKeepsLikedShareIDs(t *testing.T) {
	f := newQuizFixture(t)
	started, err := f.svc.StartSession("en")
	require.NoError(t, err)

	already, err := f.store.MarkLiked(started.SessionID, "share-1")
	require.NoError(t, err)
	require.False(t, already)

	_, err = f.svc.SubmitAnswer(started.SessionID, 1, "dark")
	require.NoError(t, err)

	state, err := f.store.Load(started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"share-1"}, state.LikedShareIDs)
	assert.Equal(t, map[uint]string{1: "dark"}, state.QuizAnswers)
}
