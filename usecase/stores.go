package usecase

import (
	"context"
	"time"

	"gorm.io/gorm"

	"direct-chat-api/entity"
	"direct-chat-api/repository"
)

// The usecases depend on these store interfaces rather than the concrete
// repositories so their decisions can be tested against in-memory fakes.
// The repository types satisfy them as-is.

type CodeStore interface {
	Save(ctx context.Context, db *gorm.DB, code *entity.VerificationCode) error
	FindLatestActive(ctx context.Context, db *gorm.DB, phone string, now time.Time) (*entity.VerificationCode, error)
	MarkVerified(ctx context.Context, db *gorm.DB, id string) error
}

type UserStore interface {
	Save(ctx context.Context, db *gorm.DB, user *entity.User) error
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindById(ctx context.Context, db *gorm.DB, user *entity.User, id string) error
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error)
	FindAllExcept(ctx context.Context, db *gorm.DB, userID string) ([]entity.User, error)
	TouchLastSeen(ctx context.Context, db *gorm.DB, userID string, at time.Time) error
}

type MessageStore interface {
	Save(ctx context.Context, db *gorm.DB, message *entity.Message) error
	FindById(ctx context.Context, db *gorm.DB, message *entity.Message, id string) error
	FindConversations(ctx context.Context, db *gorm.DB, userID string) ([]repository.ConversationRow, error)
	FindBetween(ctx context.Context, db *gorm.DB, userID, contactID string, limit int) ([]entity.Message, error)
	MarkRead(ctx context.Context, db *gorm.DB, userID, contactID string) (int64, error)
}

type ContactStore interface {
	UpsertNickname(ctx context.Context, db *gorm.DB, ownerID, contactID, nickname string) (*entity.Contact, error)
}
