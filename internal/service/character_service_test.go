package service

import (
	"errors"
	"testing"
	"time"

	"github.com/makemymate/makemymate-api/internal/model"
	"github.com/makemymate/makemymate-api/internal/repository"
	"github.com/makemymate/makemymate-api/internal/session"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCharacterService(t *testing.T, repo *stubCharacterRepo) CharacterService {
	t.Helper()
	store, err := session.NewStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	return NewCharacterService(repo, store)
}

func storedCharacter(id uint, shareID string) model.Character {
	return model.Character{
		ID:              id,
		ShareID:         shareID,
		CharacterName:   "Lady Morgana",
		CharacterTraits: []byte(`["Fierce","Cunning"]`),
		IsPublic:        true,
		LanguageCode:    "en",
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
	}
}

func TestListPublicEmptyFirstPageReturnsSamples(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{})

	resp, err := svc.ListPublic(10, "en", "")
	require.NoError(t, err)
	require.Len(t, resp.Characters, 3)
	assert.Equal(t, "Prince Lucian", resp.Characters[0].CharacterName)
	assert.Equal(t, 892, resp.Characters[0].ViewCount)
	assert.Equal(t, 156, resp.Characters[0].LikeCount)
	assert.Equal(t, 42, resp.Characters[0].ShareCount)
	assert.Empty(t, resp.NextCursor)
}

func TestListPublicSamplesFollowLanguageAndLimit(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{})

	resp, err := svc.ListPublic(2, "de", "")
	require.NoError(t, err)
	require.Len(t, resp.Characters, 2)
	assert.Equal(t, "Prinz Lucian", resp.Characters[0].CharacterName)

	// Unknown languages fall back to the English set.
	resp, err = svc.ListPublic(1, "fr", "")
	require.NoError(t, err)
	require.Len(t, resp.Characters, 1)
	assert.Equal(t, "Prince Lucian", resp.Characters[0].CharacterName)
}

func TestListPublicFullPageEmitsCursor(t *testing.T) {
	repo := &stubCharacterRepo{listResult: []model.Character{
		storedCharacter(2, "share-2"),
		storedCharacter(1, "share-1"),
	}}
	svc := newCharacterService(t, repo)

	resp, err := svc.ListPublic(2, "en", "")
	require.NoError(t, err)
	require.Len(t, resp.Characters, 2)
	assert.Equal(t, []string{"Fierce", "Cunning"}, resp.Characters[0].CharacterTraits)
	require.NotEmpty(t, resp.NextCursor)

	// The emitted cursor decodes back to the last row of the page.
	after, err := decodeCursor(resp.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, uint(1), after.ID)
	assert.True(t, after.CreatedAt.Equal(repo.listResult[1].CreatedAt))
}

func TestListPublicShortPageHasNoCursor(t *testing.T) {
	repo := &stubCharacterRepo{listResult: []model.Character{storedCharacter(1, "share-1")}}
	svc := newCharacterService(t, repo)

	resp, err := svc.ListPublic(10, "en", "")
	require.NoError(t, err)
	assert.Empty(t, resp.NextCursor)
}

func TestListPublicMalformedCursor(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{})

	_, err := svc.ListPublic(10, "en", "not-base64!!!")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cursor", validationErr.Field)
}

func TestListPublicLaterEmptyPageStaysEmpty(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{})
	cursor := encodeCursor(repository.ListCursor{CreatedAt: time.Now(), ID: 5})

	resp, err := svc.ListPublic(10, "en", cursor)
	require.NoError(t, err)
	assert.Empty(t, resp.Characters)
	assert.Empty(t, resp.NextCursor)
}

func TestListPublicStoreErrorFallsBackToSamples(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{listErr: errors.New("db down")})

	resp, err := svc.ListPublic(10, "en", "")
	require.NoError(t, err)
	require.Len(t, resp.Characters, 3)
	assert.Equal(t, "Prince Lucian", resp.Characters[0].CharacterName)
}

func TestCountFallsBackToSampleCount(t *testing.T) {
	t.Run("empty gallery", func(t *testing.T) {
		svc := newCharacterService(t, &stubCharacterRepo{})
		count, err := svc.Count("en")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("store error", func(t *testing.T) {
		svc := newCharacterService(t, &stubCharacterRepo{countErr: errors.New("db down")})
		count, err := svc.Count("en")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("real rows win", func(t *testing.T) {
		svc := newCharacterService(t, &stubCharacterRepo{count: 17})
		count, err := svc.Count("en")
		require.NoError(t, err)
		assert.Equal(t, int64(17), count)
	})
}

func TestGetByShareID(t *testing.T) {
	c := storedCharacter(1, "share-1")
	repo := &stubCharacterRepo{characters: map[string]*model.Character{"share-1": &c}}
	svc := newCharacterService(t, repo)

	resp, err := svc.GetByShareID("share-1")
	require.NoError(t, err)
	assert.Equal(t, "Lady Morgana", resp.CharacterName)

	_, err = svc.GetByShareID("missing")
	_, ok := err.(interface{ NotFound() })
	assert.True(t, ok)
}

func TestLatestFallsBackToRandomSample(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{latestErr: gorm.ErrRecordNotFound})

	sampleNames := []string{"Prince Lucian", "Lord Sebastian", "Kael the Shadow"}
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resp, err := svc.Latest("en")
		require.NoError(t, err)
		assert.Contains(t, sampleNames, resp.CharacterName)
		seen[resp.CharacterName] = true
	}
	// The pick is random across the sample set, not pinned to the first entry.
	assert.Greater(t, len(seen), 1)
}

func TestRecordViewAndShareSwallowErrors(t *testing.T) {
	repo := &stubCharacterRepo{bumpErr: errors.New("db down")}
	svc := newCharacterService(t, repo)

	svc.RecordView("share-1")
	svc.RecordShare("share-1")

	assert.Equal(t, []string{"share-1"}, repo.viewBumps)
	assert.Equal(t, []string{"share-1"}, repo.shareBumps)
}

func TestLikeOncePerSession(t *testing.T) {
	repo := &stubCharacterRepo{}
	svc := newCharacterService(t, repo)

	resp, err := svc.Like("share-1", "quiz-1-abc")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.False(t, resp.AlreadyLiked)
	assert.Len(t, repo.likeBumps, 1)

	// The second like from the same session does not touch the counter.
	resp, err = svc.Like("share-1", "quiz-1-abc")
	require.NoError(t, err)
	assert.True(t, resp.Liked)
	assert.True(t, resp.AlreadyLiked)
	assert.Len(t, repo.likeBumps, 1)

	// A different session counts again.
	resp, err = svc.Like("share-1", "quiz-2-def")
	require.NoError(t, err)
	assert.False(t, resp.AlreadyLiked)
	assert.Len(t, repo.likeBumps, 2)
}

func TestLikeRequiresSessionID(t *testing.T) {
	svc := newCharacterService(t, &stubCharacterRepo{})

	_, err := svc.Like("share-1", "")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLikeRejectsPathEscapingSessionID(t *testing.T) {
	repo := &stubCharacterRepo{}
	svc := newCharacterService(t, repo)

	for _, id := range []string{"../escaped", "a/b", ".."} {
		_, err := svc.Like("share-1", id)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "session_id", validationErr.Field)
	}
	assert.Empty(t, repo.likeBumps)
}
