package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"direct-chat-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repository UserRepository) TouchLastSeen(ctx context.Context, db *gorm.DB, userID string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("last_seen", at).Error
}

func (repository UserRepository) FindAllExcept(ctx context.Context, db *gorm.DB, userID string) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).
		Where("id <> ?", userID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
