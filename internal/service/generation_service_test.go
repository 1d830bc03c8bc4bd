package service

import (
	"context"
	"errors"
	"testing"

	"github.com/makemymate/makemymate-api/config"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubWorkflowClient struct {
	result *WorkflowCharacter
	err    error
}

func (s *stubWorkflowClient) Generate(ctx context.Context, answers []dto.QuizAnswerDTO, languageCode string, sessionID string) (*WorkflowCharacter, error) {
	return s.result, s.err
}

type stubCharacterRepo struct {
	created   []*model.Character
	createErr error
	shareID   string

	characters map[string]*model.Character
	listResult []model.Character
	listErr    error
	count      int64
	countErr   error
	latest     *model.Character
	latestErr  error

	viewBumps  []string
	shareBumps []string
	likeBumps  []string
	bumpErr    error
}

func (s *stubCharacterRepo) CreateWithShareID(character *model.Character) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	character.ShareID = s.shareID
	s.created = append(s.created, character)
	return s.shareID, nil
}

func (s *stubCharacterRepo) FindByShareID(shareID string) (*model.Character, error) {
	if c, ok := s.characters[shareID]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCharacterRepo) ListPublic(limit int, languageCode string, after repository.ListCursor) ([]model.Character, error) {
	return s.listResult, s.listErr
}

func (s *stubCharacterRepo) CountPublic(languageCode string) (int64, error) {
	return s.count, s.countErr
}

func (s *stubCharacterRepo) FindLatestPublic(languageCode string) (*model.Character, error) {
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	return s.latest, nil
}

func (s *stubCharacterRepo) IncrementView(shareID string) error {
	s.viewBumps = append(s.viewBumps, shareID)
	return s.bumpErr
}

func (s *stubCharacterRepo) IncrementShare(shareID string) error {
	s.shareBumps = append(s.shareBumps, shareID)
	return s.bumpErr
}

func (s *stubCharacterRepo) IncrementLike(shareID string) error {
	s.likeBumps = append(s.likeBumps, shareID)
	return s.bumpErr
}

type stubAnalytics struct {
	events []string
}

func (s *stubAnalytics) Track(eventType string, sessionID string, languageCode string, metadata map[string]interface{}) {
	s.events = append(s.events, eventType)
}

func generationConfig() *config.Config {
	return &config.Config{App: config.App{BaseURL: "https://makemymate.app"}}
}

func workflowResult() *WorkflowCharacter {
	return &WorkflowCharacter{
		Name:        "Lady Morgana",
		Title:       "The Storm Witch",
		Description: "A sorceress of the high cliffs.",
		Traits:      []string{"Fierce", "Cunning"},
		Personality: "Sharp and unforgiving.",
		Background:  "Raised by the sea.",
		Aesthetic:   "Dark Fantasy",
		ImageURL:    "https://example.com/morgana.jpg",
		ImagePrompt: "portrait of a storm witch on a cliff",
	}
}

func TestGenerateSuccess(t *testing.T) {
	repo := &stubCharacterRepo{shareID: "share-123"}
	analytics := &stubAnalytics{}
	svc := NewGenerationService(&stubWorkflowClient{result: workflowResult()}, repo, analytics, generationConfig())

	resp := svc.Generate(context.Background(), dto.GenerateCharacterRequest{
		QuizAnswers: []dto.QuizAnswerDTO{{QuestionID: 1, Answer: "a"}},
		Language:    "en",
		SessionID:   "quiz-1-abc",
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "Lady Morgana", resp.Character.Name)
	require.NotNil(t, resp.Character.ShareID)
	assert.Equal(t, "share-123", *resp.Character.ShareID)
	require.NotNil(t, resp.Character.ShareURL)
	assert.Equal(t, "https://makemymate.app/character/share-123", *resp.Character.ShareURL)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "quiz-1-abc", repo.created[0].SessionID)
	assert.Equal(t, "en", repo.created[0].LanguageCode)
	assert.True(t, repo.created[0].IsPublic)
	assert.Equal(t, "portrait of a storm witch on a cliff", repo.created[0].ImagePrompt)
	assert.Contains(t, analytics.events, "character_generated")
}

func TestGenerateMintsSessionIDWhenMissing(t *testing.T) {
	repo := &stubCharacterRepo{shareID: "share-123"}
	svc := NewGenerationService(&stubWorkflowClient{result: workflowResult()}, repo, &stubAnalytics{}, generationConfig())

	resp := svc.Generate(context.Background(), dto.GenerateCharacterRequest{Language: "en"})

	assert.True(t, resp.Success)
	require.Len(t, repo.created, 1)
	assert.Regexp(t, `^quiz-\d+-.{9}$`, repo.created[0].SessionID)
}

func TestGenerateWorkflowFailureReturnsFallback(t *testing.T) {
	repo := &stubCharacterRepo{shareID: "share-123"}
	analytics := &stubAnalytics{}
	svc := NewGenerationService(&stubWorkflowClient{err: &GenerationError{StatusCode: 502}}, repo, analytics, generationConfig())

	resp := svc.Generate(context.Background(), dto.GenerateCharacterRequest{Language: "en", SessionID: "quiz-1-abc"})

	assert.False(t, resp.Success)
	assert.Equal(t, "Prince Lucian", resp.Character.Name)
	assert.Equal(t, "The Dark Enchanter", resp.Character.Title)
	assert.Len(t, resp.Character.Traits, 5)
	assert.Nil(t, resp.Character.ShareID)
	assert.Nil(t, resp.Character.ShareURL)

	// Nothing is stored on a failed generation.
	assert.Empty(t, repo.created)
	assert.Contains(t, analytics.events, "generation_failed")
}

func TestGeneratePersistFailureDegradesSharing(t *testing.T) {
	repo := &stubCharacterRepo{createErr: errors.New("insert failed")}
	svc := NewGenerationService(&stubWorkflowClient{result: workflowResult()}, repo, &stubAnalytics{}, generationConfig())

	resp := svc.Generate(context.Background(), dto.GenerateCharacterRequest{Language: "en", SessionID: "quiz-1-abc"})

	// The character still renders; it just cannot be shared.
	assert.True(t, resp.Success)
	assert.Equal(t, "Lady Morgana", resp.Character.Name)
	assert.Nil(t, resp.Character.ShareID)
	assert.Nil(t, resp.Character.ShareURL)
}
