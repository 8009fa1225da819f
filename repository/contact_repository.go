package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"direct-chat-api/entity"
)

type ContactRepository struct {
	Repository[entity.Contact]
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// UpsertNickname creates the (owner, contact) row on first rename and updates
// the nickname on later renames.
func (repository ContactRepository) UpsertNickname(ctx context.Context, db *gorm.DB, ownerID, contactID, nickname string) (*entity.Contact, error) {
	contact := entity.Contact{
		UserID:    ownerID,
		ContactID: contactID,
		Nickname:  nickname,
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "contact_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nickname", "updated_at"}),
		}).
		Create(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
