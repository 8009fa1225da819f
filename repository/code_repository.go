package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"direct-chat-api/entity"
)

type CodeRepository struct {
	Repository[entity.VerificationCode]
}

func NewCodeRepository() *CodeRepository {
	return &CodeRepository{}
}

// FindLatestActive returns the newest unverified, unexpired code row for a
// phone. A nil result with nil error means no candidate exists.
func (repository CodeRepository) FindLatestActive(ctx context.Context, db *gorm.DB, phone string, now time.Time) (*entity.VerificationCode, error) {
	var code entity.VerificationCode
	err := db.WithContext(ctx).
		Where("phone = ? AND verified = false AND expires_at > ?", phone, now).
		Order("created_at DESC").
		First(&code).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// MarkVerified flips the single-use flag so the code never matches again.
func (repository CodeRepository) MarkVerified(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&entity.VerificationCode{}).
		Where("id = ?", id).
		Update("verified", true).Error
}
