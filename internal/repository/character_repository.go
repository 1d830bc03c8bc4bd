package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/makemymate/makemymate-api/internal/model"
	"gorm.io/gorm"
)

// ListCursor marks the last row of the previous page. Zero value means first page.
type ListCursor struct {
	CreatedAt time.Time
	ID        uint
}

func (c ListCursor) IsZero() bool {
	return c.ID == 0 && c.CreatedAt.IsZero()
}

type CharacterRepository interface {
	// CreateWithShareID mints the share id and inserts the character in a single
	// transaction, the store-side "insert_character_with_share_id" contract.
	CreateWithShareID(character *model.Character) (string, error)
	FindByShareID(shareID string) (*model.Character, error)
	ListPublic(limit int, languageCode string, after ListCursor) ([]model.Character, error)
	CountPublic(languageCode string) (int64, error)
	FindLatestPublic(languageCode string) (*model.Character, error)
	IncrementView(shareID string) error
	IncrementShare(shareID string) error
	IncrementLike(shareID string) error
}

type characterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) CreateWithShareID(character *model.Character) (string, error) {
	shareID := uuid.NewString()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		character.ShareID = shareID
		return tx.Create(character).Error
	})
	if err != nil {
		return "", err
	}
	return shareID, nil
}

func (r *characterRepository) FindByShareID(shareID string) (*model.Character, error) {
	var character model.Character
	if err := r.db.Where("share_id = ?", shareID).First(&character).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) ListPublic(limit int, languageCode string, after ListCursor) ([]model.Character, error) {
	query := r.db.
		Where("is_public = ?", true).
		Where("language_code = ?", languageCode).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if !after.IsZero() {
		query = query.Where("(created_at, id) < (?, ?)", after.CreatedAt, after.ID)
	}

	var characters []model.Character
	if err := query.Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *characterRepository) CountPublic(languageCode string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Character{}).
		Where("is_public = ?", true).
		Where("language_code = ?", languageCode).
		Count(&count).Error
	return count, err
}

func (r *characterRepository) FindLatestPublic(languageCode string) (*model.Character, error) {
	var character model.Character
	err := r.db.
		Where("is_public = ?", true).
		Where("language_code = ?", languageCode).
		Order("created_at DESC, id DESC").
		First(&character).Error
	if err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *characterRepository) IncrementView(shareID string) error {
	return r.incrementCounter(shareID, "view_count")
}

func (r *characterRepository) IncrementShare(shareID string) error {
	return r.incrementCounter(shareID, "share_count")
}

func (r *characterRepository) IncrementLike(shareID string) error {
	return r.incrementCounter(shareID, "like_count")
}

func (r *characterRepository) incrementCounter(shareID string, column string) error {
	return r.db.Model(&model.Character{}).
		Where("share_id = ?", shareID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}
