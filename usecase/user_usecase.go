package usecase

import (
	"context"
	"time"

	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
)

type UserUsecase interface {
	UpdateProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error)
	UpdateAvatar(ctx context.Context, userID, avatarURL string) (res.UserResponse, error)
	GetAllUsers(ctx context.Context, userID string) ([]res.UserResponse, error)
	FindOrCreateByPhone(ctx context.Context, currentUserID string, request *req.FindUserRequest) (res.UserResponse, error)
	RenameContact(ctx context.Context, ownerID string, request *req.RenameContactRequest) (res.UserResponse, error)
	TouchLastSeen(ctx context.Context, userID string, at time.Time) error
}
