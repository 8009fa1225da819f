package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
	"direct-chat-api/entity"
)

type UserUsecaseImpl struct {
	UserRepository    UserStore
	ContactRepository ContactStore
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewUserUsecase(userRepository UserStore, contactRepository ContactStore, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger) UserUsecase {
	return &UserUsecaseImpl{
		UserRepository:    userRepository,
		ContactRepository: contactRepository,
		Validate:          validate,
		DB:                DB,
		Logger:            logger,
	}
}

func (uc *UserUsecaseImpl) UpdateProfile(ctx context.Context, userID string, request *req.EditProfileRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, apperror.Validation("name is required")
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.UserResponse{}, apperror.NotFound("user not found")
		}
		return res.UserResponse{}, apperror.Storage("failed to load user", err)
	}

	user.Name = request.Name
	if request.Avatar != "" {
		user.Avatar = request.Avatar
	}
	if err := uc.UserRepository.Update(ctx, uc.DB, &user); err != nil {
		return res.UserResponse{}, apperror.Storage("failed to update profile", err)
	}

	uc.Logger.Infof("user %s updated profile", userID)
	return ToUserResponse(&user), nil
}

func (uc *UserUsecaseImpl) UpdateAvatar(ctx context.Context, userID, avatarURL string) (res.UserResponse, error) {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.UserResponse{}, apperror.NotFound("user not found")
		}
		return res.UserResponse{}, apperror.Storage("failed to load user", err)
	}

	user.Avatar = avatarURL
	if err := uc.UserRepository.Update(ctx, uc.DB, &user); err != nil {
		return res.UserResponse{}, apperror.Storage("failed to update avatar", err)
	}
	return ToUserResponse(&user), nil
}

func (uc *UserUsecaseImpl) GetAllUsers(ctx context.Context, userID string) ([]res.UserResponse, error) {
	users, err := uc.UserRepository.FindAllExcept(ctx, uc.DB, userID)
	if err != nil {
		return nil, apperror.Storage("failed to list users", err)
	}

	responses := make([]res.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses, nil
}

func (uc *UserUsecaseImpl) FindOrCreateByPhone(ctx context.Context, currentUserID string, request *req.FindUserRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, apperror.Validation("phone number is required")
	}

	user, err := uc.UserRepository.FindByPhone(ctx, uc.DB, request.Phone)
	if err == nil {
		if user.ID == currentUserID {
			return res.UserResponse{}, apperror.Conflict("you cannot add your own number")
		}
		return ToUserResponse(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return res.UserResponse{}, apperror.Storage("failed to look up user", err)
	}

	newUser := &entity.User{
		Phone:    request.Phone,
		Name:     DefaultUserName(request.Phone),
		LastSeen: time.Now(),
	}
	if err := uc.UserRepository.Save(ctx, uc.DB, newUser); err != nil {
		return res.UserResponse{}, apperror.Storage("failed to create user", err)
	}

	uc.Logger.Infof("created placeholder user for phone %s", request.Phone)
	return ToUserResponse(newUser), nil
}

func (uc *UserUsecaseImpl) RenameContact(ctx context.Context, ownerID string, request *req.RenameContactRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.UserResponse{}, apperror.Validation("contactId and nickname are required")
	}

	var contactUser entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &contactUser, request.ContactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.UserResponse{}, apperror.NotFound("contact not found")
		}
		return res.UserResponse{}, apperror.Storage("failed to load contact", err)
	}

	if _, err := uc.ContactRepository.UpsertNickname(ctx, uc.DB, ownerID, request.ContactID, request.Nickname); err != nil {
		return res.UserResponse{}, apperror.Storage("failed to save nickname", err)
	}

	response := ToUserResponse(&contactUser)
	response.Name = request.Nickname
	return response, nil
}

func (uc *UserUsecaseImpl) TouchLastSeen(ctx context.Context, userID string, at time.Time) error {
	return uc.UserRepository.TouchLastSeen(ctx, uc.DB, userID, at)
}
