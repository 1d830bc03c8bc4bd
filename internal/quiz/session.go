package quiz

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/rs/zerolog/log"
)

// Session states. A restarted quiz discards the session entirely and re-enters
// loading via a fresh question fetch, so there is no transition out of Completed.
const (
	StateIntro      = "intro"
	StateInProgress = "in_progress"
	StateCompleted  = "completed"
)

// Sections mirror the fixed quiz structure.
var Sections = []string{"character", "appearance", "redflags"}

// Answer is one locally captured answer. Local state is last-write-wins per question;
// the remote character_responses table stays append-only.
type Answer struct {
	QuestionID uint      `json:"question_id"`
	Value      string    `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// PersistFunc saves one answer remotely. It is invoked fire-and-forget: the returned
// error is logged and discarded, never blocking quiz progression.
type PersistFunc func(sessionID string, questionID uint, value string, languageCode string) error

// Progress is computed purely from local answer state.
type Progress struct {
	TotalQuestions    int                `json:"total_questions"`
	AnsweredQuestions int                `json:"answered_questions"`
	CompletionPercent float64            `json:"completion_percent"`
	CurrentSection    string             `json:"current_section"`
	SectionProgress   map[string]float64 `json:"section_progress"`
}

// Session drives a user through the ordered question list for one language.
type Session struct {
	mu sync.Mutex

	id           string
	languageCode string
	state        string
	cursor       int
	questions    []model.QuizQuestion
	answers      map[uint]Answer
	persist      PersistFunc
}

// NewSessionID reproduces the quiz-<millis>-<suffix> token shape.
func NewSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("quiz-%d-%s", time.Now().UnixMilli(), suffix)
}

func NewSession(languageCode string, questions []model.QuizQuestion, persist PersistFunc) *Session {
	return &Session{
		id:           NewSessionID(),
		languageCode: languageCode,
		state:        StateIntro,
		questions:    questions,
		answers:      make(map[uint]Answer),
		persist:      persist,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) LanguageCode() string {
	return s.languageCode
}

func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *Session) Questions() []model.QuizQuestion {
	return s.questions
}

// Begin moves the session from the intro screen into the first question.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIntro {
		s.state = StateInProgress
	}
}

// Current returns the question under the cursor, or nil once completed.
func (s *Session) Current() *model.QuizQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted || s.cursor >= len(s.questions) {
		return nil
	}
	q := s.questions[s.cursor]
	return &q
}

// Answer records value for questionID locally and persists it best-effort. Unknown
// question ids are rejected; answering an already answered question overwrites the
// local value.
func (s *Session) Answer(questionID uint, value string) error {
	s.mu.Lock()
	if s.state == StateCompleted {
		s.mu.Unlock()
		return fmt.Errorf("session %s is already completed", s.id)
	}
	if s.state == StateIntro {
		s.state = StateInProgress
	}
	if !s.hasQuestion(questionID) {
		s.mu.Unlock()
		return fmt.Errorf("question %d is not part of this quiz", questionID)
	}
	s.answers[questionID] = Answer{QuestionID: questionID, Value: value, Timestamp: time.Now()}
	persist := s.persist
	sessionID, lang := s.id, s.languageCode
	s.mu.Unlock()

	if persist != nil {
		go func() {
			if err := persist(sessionID, questionID, value, lang); err != nil {
				log.Warn().Err(err).Str("sessionID", sessionID).Uint("questionID", questionID).
					Msg("Failed to persist quiz answer, continuing without it")
			}
		}()
	}
	return nil
}

// Advance moves the cursor forward. Advancing past the last question completes the
// session and returns the ordered list of answered questions; skipped questions
// contribute nothing.
func (s *Session) Advance() (completed bool, answers []Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCompleted {
		return true, s.answerListLocked()
	}
	if s.state == StateIntro {
		s.state = StateInProgress
	}
	if s.cursor < len(s.questions)-1 {
		s.cursor++
		return false, nil
	}
	s.state = StateCompleted
	return true, s.answerListLocked()
}

// Retreat moves the cursor back one question; at the first question it is a no-op.
func (s *Session) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	if s.cursor > 0 {
		s.cursor--
	}
}

// Answers returns the captured answers in question order.
func (s *Session) Answers() []Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answerListLocked()
}

func (s *Session) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Progress{
		TotalQuestions:    len(s.questions),
		AnsweredQuestions: len(s.answers),
		CurrentSection:    "character",
		SectionProgress:   make(map[string]float64, len(Sections)),
	}
	if len(s.questions) > 0 {
		p.CompletionPercent = float64(len(s.answers)) / float64(len(s.questions)) * 100
		if s.cursor < len(s.questions) {
			p.CurrentSection = s.questions[s.cursor].Section
		}
	}

	totals := make(map[string]int)
	answered := make(map[string]int)
	for _, q := range s.questions {
		totals[q.Section]++
		if _, ok := s.answers[q.ID]; ok {
			answered[q.Section]++
		}
	}
	for _, section := range Sections {
		if totals[section] == 0 {
			p.SectionProgress[section] = 0
			continue
		}
		p.SectionProgress[section] = float64(answered[section]) / float64(totals[section]) * 100
	}
	return p
}

func (s *Session) hasQuestion(questionID uint) bool {
	for _, q := range s.questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

func (s *Session) answerListLocked() []Answer {
	answers := make([]Answer, 0, len(s.answers))
	for _, q := range s.questions {
		if a, ok := s.answers[q.ID]; ok {
			answers = append(answers, a)
		}
	}
	return answers
}
