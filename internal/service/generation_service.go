package service

import (
	"context"
	"encoding/json"

	"github.com/makemymate/makemymate-api/config"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/quiz"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// GenerationService turns a completed answer set into a persisted, shareable
// character. It never fails outward: a broken workflow yields the fallback character
// with success=false, and a failed insert yields the character without a share link.
type GenerationService interface {
	Generate(ctx context.Context, req dto.GenerateCharacterRequest) *dto.GenerateCharacterResponse
}

type generationService struct {
	workflow      WorkflowClient
	characterRepo repository.CharacterRepository
	analytics     AnalyticsService
	appBaseURL    string
}

func NewGenerationService(workflow WorkflowClient, characterRepo repository.CharacterRepository, analytics AnalyticsService, cfg *config.Config) GenerationService {
	return &generationService{
		workflow:      workflow,
		characterRepo: characterRepo,
		analytics:     analytics,
		appBaseURL:    cfg.App.BaseURL,
	}
}

func (s *generationService) Generate(ctx context.Context, req dto.GenerateCharacterRequest) *dto.GenerateCharacterResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = quiz.NewSessionID()
	}

	result, err := s.workflow.Generate(ctx, req.QuizAnswers, req.Language, sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Str("language", req.Language).
			Msg("Character generation failed, returning fallback character")
		s.analytics.Track("generation_failed", sessionID, req.Language, nil)
		return &dto.GenerateCharacterResponse{
			Success:   false,
			Character: FallbackCharacter(),
		}
	}

	character := dto.GeneratedCharacterDTO{
		Name:        result.Name,
		Title:       result.Title,
		Description: result.Description,
		Traits:      result.Traits,
		Personality: result.Personality,
		Background:  result.Background,
		Aesthetic:   result.Aesthetic,
		ImageURL:    result.ImageURL,
	}

	shareID, persistErr := s.persist(sessionID, req.Language, result)
	if persistErr != nil {
		// Degraded result: the character renders but cannot be shared or revisited.
		log.Error().Err(persistErr).Str("sessionID", sessionID).Msg("Failed to store generated character")
	} else {
		shareURL := s.appBaseURL + "/character/" + shareID
		character.ShareID = &shareID
		character.ShareURL = &shareURL
	}

	s.analytics.Track("character_generated", sessionID, req.Language, map[string]interface{}{
		"answerCount": len(req.QuizAnswers),
		"stored":      persistErr == nil,
	})

	return &dto.GenerateCharacterResponse{Success: true, Character: character}
}

func (s *generationService) persist(sessionID string, languageCode string, result *WorkflowCharacter) (string, error) {
	traits, err := json.Marshal(result.Traits)
	if err != nil {
		return "", err
	}
	character := model.Character{
		SessionID:            sessionID,
		CharacterName:        result.Name,
		CharacterTitle:       result.Title,
		CharacterDescription: result.Description,
		CharacterTraits:      traits,
		PersonalityProfile:   result.Personality,
		// The workflow returns no separate appearance text.
		AppearanceDescription: result.Description,
		BackgroundStory:       result.Background,
		ImageURL:              result.ImageURL,
		ImagePrompt:           result.ImagePrompt,
		AestheticStyle:        result.Aesthetic,
		IsPublic:              true,
		LanguageCode:          languageCode,
	}
	return s.characterRepo.CreateWithShareID(&character)
}

// FallbackCharacter is returned whenever the workflow call fails, so the result
// screen always has something to render.
func FallbackCharacter() dto.GeneratedCharacterDTO {
	return dto.GeneratedCharacterDTO{
		Name:        "Prince Lucian",
		Title:       "The Dark Enchanter",
		Description: "A mysterious prince with piercing amber eyes and a troubled past. He's protective, possessive, and willing to burn the world for the one he loves.",
		Traits:      []string{"Mysterious", "Protective", "Possessive", "Dark Magic", "Royal Blood"},
		Personality: "A brooding prince who hides his vulnerability behind a cold exterior. He's fiercely loyal and protective, with a dark side that only emerges when those he loves are threatened.",
		Background:  "Born into a cursed royal family, Lucian learned to wield dark magic to protect his kingdom. His heart was hardened by betrayal, until he met someone who could see through his facade.",
		Aesthetic:   "Gothic Romance",
		ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop&crop=face",
	}
}
