package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrInvalidSessionID rejects session ids that cannot name a state file. Ids come from
// clients, so anything that would resolve outside the state directory is refused
// before any filesystem access.
var ErrInvalidSessionID = errors.New("invalid session id")

func validSessionID(id string) bool {
	return id != "" && id != "." && id != ".." && filepath.Base(id) == id
}

// State is the client-local persisted state: selected language, in-progress quiz
// snapshot, and the set of share ids this client has already liked. It stands in for
// the browser-local storage of the web client, with an explicit load/persist/clear
// lifecycle.
type State struct {
	SessionID     string          `json:"session_id"`
	Language      string          `json:"language"`
	QuizAnswers   map[uint]string `json:"quiz_answers,omitempty"`
	QuizCursor    int             `json:"quiz_cursor"`
	LikedShareIDs []string        `json:"liked_share_ids,omitempty"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (s *State) HasLiked(shareID string) bool {
	for _, id := range s.LikedShareIDs {
		if id == shareID {
			return true
		}
	}
	return false
}

// Store persists one JSON file per client session under dir.
type Store struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{fs: fs, dir: dir}, nil
}

// Load returns the persisted state for sessionID, or a fresh one when none exists.
func (s *Store) Load(sessionID string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(sessionID)
}

// Save writes state to disk, stamping UpdatedAt.
func (s *Store) Save(state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(state)
}

// Clear removes the session file; an explicit quiz restart calls this.
func (s *Store) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !validSessionID(sessionID) {
		return fmt.Errorf("%w: %q", ErrInvalidSessionID, sessionID)
	}
	err := s.fs.Remove(s.path(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MarkLiked records shareID against the session's liked set. Returns true when the
// share id was already liked, in which case nothing is written.
func (s *Store) MarkLiked(sessionID, shareID string) (alreadyLiked bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(sessionID)
	if err != nil {
		return false, err
	}
	if state.HasLiked(shareID) {
		return true, nil
	}
	state.LikedShareIDs = append(state.LikedShareIDs, shareID)
	return false, s.saveLocked(state)
}

func (s *Store) loadLocked(sessionID string) (*State, error) {
	if !validSessionID(sessionID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSessionID, sessionID)
	}
	raw, err := afero.ReadFile(s.fs, s.path(sessionID))
	if os.IsNotExist(err) {
		return &State{SessionID: sessionID, QuizAnswers: make(map[uint]string)}, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Corrupt session state file, starting fresh")
		return &State{SessionID: sessionID, QuizAnswers: make(map[uint]string)}, nil
	}
	if state.QuizAnswers == nil {
		state.QuizAnswers = make(map[uint]string)
	}
	return &state, nil
}

func (s *Store) saveLocked(state *State) error {
	if !validSessionID(state.SessionID) {
		return fmt.Errorf("%w: %q", ErrInvalidSessionID, state.SessionID)
	}
	state.UpdatedAt = time.Now()
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return afero.WriteFile(s.fs, s.path(state.SessionID), raw, 0o644)
}

func (s *Store) path(sessionID string) string {
	return filepath.Join(s.dir, sessionID+".json")
}
