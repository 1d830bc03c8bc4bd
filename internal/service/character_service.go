package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/jinzhu/copier"
	"github.com/makemymate/makemymate-api/internal/dto"
	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/makemymate/makemymate-api/internal/session"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DefaultGalleryLimit = 10
	MaxGalleryLimit     = 50
)

type CharacterService interface {
	ListPublic(limit int, languageCode string, cursor string) (*dto.CharacterListResponse, error)
	Count(languageCode string) (int64, error)
	Latest(languageCode string) (*dto.CharacterResponse, error)
	GetByShareID(shareID string) (*dto.CharacterResponse, error)
	// RecordView and RecordShare never fail the caller; counter bumps are best effort.
	RecordView(shareID string)
	RecordShare(shareID string)
	Like(shareID string, sessionID string) (*dto.LikeResponse, error)
}

type characterService struct {
	characterRepo repository.CharacterRepository
	stateStore    *session.Store
}

func NewCharacterService(characterRepo repository.CharacterRepository, stateStore *session.Store) CharacterService {
	return &characterService{characterRepo: characterRepo, stateStore: stateStore}
}

func (s *characterService) ListPublic(limit int, languageCode string, cursor string) (*dto.CharacterListResponse, error) {
	if limit <= 0 {
		limit = DefaultGalleryLimit
	}
	if limit > MaxGalleryLimit {
		limit = MaxGalleryLimit
	}
	if languageCode == "" {
		languageCode = "en"
	}

	after, err := decodeCursor(cursor)
	if err != nil {
		return nil, &ValidationError{Field: "cursor", Message: "malformed pagination cursor"}
	}

	characters, err := s.characterRepo.ListPublic(limit, languageCode, after)
	if err != nil {
		// The gallery is presentational; a broken store degrades to samples
		// rather than erroring the page.
		log.Warn().Err(err).Str("language", languageCode).Msg("Failed to list characters, falling back to samples")
		characters = nil
	}

	// First page of an empty or unreachable gallery gets the seeded samples so the
	// page never renders blank. Later pages stay empty to terminate pagination.
	if len(characters) == 0 {
		if after.IsZero() {
			return &dto.CharacterListResponse{Characters: SampleCharacters(languageCode, limit)}, nil
		}
		return &dto.CharacterListResponse{}, nil
	}

	out := make([]dto.CharacterResponse, 0, len(characters))
	for i := range characters {
		out = append(out, toCharacterResponse(&characters[i]))
	}

	resp := &dto.CharacterListResponse{Characters: out}
	if len(characters) == limit {
		last := characters[len(characters)-1]
		resp.NextCursor = encodeCursor(repository.ListCursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}

func (s *characterService) Count(languageCode string) (int64, error) {
	if languageCode == "" {
		languageCode = "en"
	}
	count, err := s.characterRepo.CountPublic(languageCode)
	if err != nil {
		log.Warn().Err(err).Str("language", languageCode).Msg("Failed to count characters, reporting sample count")
		return int64(len(SampleCharacters(languageCode, 0))), nil
	}
	if count == 0 {
		return int64(len(SampleCharacters(languageCode, 0))), nil
	}
	return count, nil
}

func (s *characterService) Latest(languageCode string) (*dto.CharacterResponse, error) {
	if languageCode == "" {
		languageCode = "en"
	}
	character, err := s.characterRepo.FindLatestPublic(languageCode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn().Err(err).Str("language", languageCode).Msg("Failed to load latest character, falling back to sample")
		}
		samples := SampleCharacters(languageCode, 0)
		return &samples[rand.Intn(len(samples))], nil
	}
	resp := toCharacterResponse(character)
	return &resp, nil
}

func (s *characterService) GetByShareID(shareID string) (*dto.CharacterResponse, error) {
	character, err := s.characterRepo.FindByShareID(shareID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "character", Key: shareID}
	}
	if err != nil {
		return nil, err
	}
	resp := toCharacterResponse(character)
	return &resp, nil
}

func (s *characterService) RecordView(shareID string) {
	if err := s.characterRepo.IncrementView(shareID); err != nil {
		log.Warn().Err(err).Str("shareID", shareID).Msg("Failed to record character view")
	}
}

func (s *characterService) RecordShare(shareID string) {
	if err := s.characterRepo.IncrementShare(shareID); err != nil {
		log.Warn().Err(err).Str("shareID", shareID).Msg("Failed to record character share")
	}
}

// Like bumps the like counter at most once per session per character. The
// once-only guarantee is as durable as the session state store, not the database.
func (s *characterService) Like(shareID string, sessionID string) (*dto.LikeResponse, error) {
	if sessionID == "" {
		return nil, &ValidationError{Field: "session_id", Message: "session_id is required"}
	}

	alreadyLiked, err := s.stateStore.MarkLiked(sessionID, shareID)
	if errors.Is(err, session.ErrInvalidSessionID) {
		return nil, &ValidationError{Field: "session_id", Message: "malformed session id"}
	}
	if err != nil {
		return nil, err
	}
	if alreadyLiked {
		return &dto.LikeResponse{Liked: true, AlreadyLiked: true}, nil
	}

	if err := s.characterRepo.IncrementLike(shareID); err != nil {
		return nil, err
	}
	return &dto.LikeResponse{Liked: true, AlreadyLiked: false}, nil
}

func toCharacterResponse(character *model.Character) dto.CharacterResponse {
	var resp dto.CharacterResponse
	if err := copier.Copy(&resp, character); err != nil {
		log.Warn().Err(err).Msg("Failed to map character to response")
	}
	resp.CharacterTraits = decodeTraits(character.CharacterTraits)
	return resp
}

func decodeTraits(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var traits []string
	if err := json.Unmarshal(raw, &traits); err != nil {
		log.Warn().Err(err).Msg("Stored character traits are not a string array")
		return nil
	}
	return traits
}

// cursorPayload is what actually crosses the wire inside the opaque cursor.
type cursorPayload struct {
	CreatedAt time.Time `json:"c"`
	ID        uint      `json:"i"`
}

func encodeCursor(c repository.ListCursor) string {
	raw, _ := json.Marshal(cursorPayload{CreatedAt: c.CreatedAt, ID: c.ID})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(cursor string) (repository.ListCursor, error) {
	if cursor == "" {
		return repository.ListCursor{}, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return repository.ListCursor{}, err
	}
	var payload cursorPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return repository.ListCursor{}, err
	}
	return repository.ListCursor{CreatedAt: payload.CreatedAt, ID: payload.ID}, nil
}
