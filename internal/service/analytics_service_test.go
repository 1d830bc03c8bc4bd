package service

import (
	"sync"
	"testing"
	"time"

	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingAnalyticsRepo struct {
	mu      sync.Mutex
	release chan struct{}
	events  []*model.AnalyticsEvent
}

func (r *blockingAnalyticsRepo) Create(event *model.AnalyticsEvent) error {
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *blockingAnalyticsRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestTrackDoesNotBlockCaller(t *testing.T) {
	repo := &blockingAnalyticsRepo{release: make(chan struct{})}
	svc := NewAnalyticsService(repo)

	done := make(chan struct{})
	go func() {
		svc.Track("quiz_started", "quiz-1-abc", "en", nil)
		close(done)
	}()

	// Track returns while the insert is still held up.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Track blocked on the store insert")
	}
	assert.Equal(t, 0, repo.count())

	close(repo.release)
	require.Eventually(t, func() bool { return repo.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestTrackRecordsEventFields(t *testing.T) {
	repo := &blockingAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	svc.Track("quiz_completed", "quiz-1-abc", "de", map[string]interface{}{"answeredQuestions": 12})

	require.Eventually(t, func() bool { return repo.count() == 1 }, time.Second, 10*time.Millisecond)
	repo.mu.Lock()
	defer repo.mu.Unlock()
	event := repo.events[0]
	assert.Equal(t, "quiz_completed", event.EventType)
	assert.Equal(t, "quiz-1-abc", event.SessionID)
	assert.Equal(t, "de", event.LanguageCode)
	assert.JSONEq(t, `{"answeredQuestions":12}`, string(event.Metadata))
}
