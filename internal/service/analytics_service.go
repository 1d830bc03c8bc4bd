package service

import (
	"encoding/json"

	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService records correlation events. Tracking is best-effort telemetry:
// the insert runs on its own goroutine and failures are logged and discarded, so no
// caller ever blocks on it.
type AnalyticsService interface {
	Track(eventType string, sessionID string, languageCode string, metadata map[string]interface{})
}

type analyticsService struct {
	repo repository.AnalyticsRepository
}

func NewAnalyticsService(repo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{repo: repo}
}

func (s *analyticsService) Track(eventType string, sessionID string, languageCode string, metadata map[string]interface{}) {
	event := model.AnalyticsEvent{
		EventType:    eventType,
		SessionID:    sessionID,
		LanguageCode: languageCode,
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			log.Warn().Err(err).Str("eventType", eventType).Msg("Failed to encode analytics metadata, dropping it")
		} else {
			event.Metadata = raw
		}
	}

	go func() {
		if err := s.repo.Create(&event); err != nil {
			log.Warn().Err(err).Str("eventType", eventType).Str("sessionID", sessionID).Msg("Failed to track analytics event")
		}
	}()
}
