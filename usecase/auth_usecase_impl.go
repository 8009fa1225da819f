package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
	"direct-chat-api/entity"
	"direct-chat-api/security"
	"direct-chat-api/sms"
)

const codeLifetime = 10 * time.Minute

type AuthUsecaseImpl struct {
	CodeRepository CodeStore
	UserRepository UserStore
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
	Sender sms.Sender
}

func NewAuthUsecase(codeRepository CodeStore, userRepository UserStore, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT, sender sms.Sender) AuthUsecase {
	return &AuthUsecaseImpl{
		CodeRepository: codeRepository,
		UserRepository: userRepository,
		Validate:       validate,
		DB:             DB,
		Logger:         logger,
		JWT:            JWT,
		Sender:         sender,
	}
}

func (uc *AuthUsecaseImpl) SendCode(ctx context.Context, request *req.SendCodeRequest) (res.SendCodeResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.SendCodeResponse{}, apperror.Validation("phone number is required")
	}

	code, err := security.GenerateCode()
	if err != nil {
		return res.SendCodeResponse{}, apperror.Storage("failed to generate code", err)
	}
	codeHash, err := security.HashCode(code)
	if err != nil {
		return res.SendCodeResponse{}, apperror.Storage("failed to hash code", err)
	}

	record := &entity.VerificationCode{
		Phone:     request.Phone,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().Add(codeLifetime),
	}
	if err := uc.CodeRepository.Save(ctx, uc.DB, record); err != nil {
		uc.Logger.WithError(err).Errorf("failed to store verification code for %s", request.Phone)
		return res.SendCodeResponse{}, apperror.Storage("failed to store verification code", err)
	}

	// Delivery failure degrades to a logged code; the row is already stored
	// and the user can still verify.
	body := fmt.Sprintf("Your verification code is: %s", code)
	if err := uc.Sender.Send(ctx, request.Phone, body); err != nil {
		uc.Logger.WithError(err).Warnf("SMS delivery failed for %s, code only logged", request.Phone)
		uc.Logger.Infof("verification code for %s: %s", request.Phone, code)
		return res.SendCodeResponse{Success: true, Message: "code generated (SMS delivery failed)"}, nil
	}

	return res.SendCodeResponse{Success: true, Message: "code sent"}, nil
}

func (uc *AuthUsecaseImpl) VerifyCode(ctx context.Context, request *req.VerifyRequest) (res.VerifyResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		return res.VerifyResponse{}, apperror.Validation("phone and code are required")
	}

	record, err := uc.CodeRepository.FindLatestActive(ctx, uc.DB, request.Phone, time.Now())
	if err != nil {
		return res.VerifyResponse{}, apperror.Storage("failed to look up verification code", err)
	}
	if record == nil || record.Expired(time.Now()) || !security.CompareCode(record.CodeHash, request.Code) {
		return res.VerifyResponse{}, apperror.Auth("invalid or expired code")
	}

	if err := uc.CodeRepository.MarkVerified(ctx, uc.DB, record.ID); err != nil {
		return res.VerifyResponse{}, apperror.Storage("failed to consume verification code", err)
	}

	user, err := uc.createOrTouchUser(ctx, request.Phone)
	if err != nil {
		return res.VerifyResponse{}, err
	}

	token, err := uc.JWT.GenerateToken(user)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to generate token")
		return res.VerifyResponse{}, apperror.Storage("failed to issue credential", err)
	}

	uc.Logger.Infof("user %s verified phone %s", user.ID, user.Phone)
	return res.VerifyResponse{
		Success: true,
		Token:   token,
		User:    ToUserResponse(user),
	}, nil
}

// createOrTouchUser registers the phone on first verification and refreshes
// last-seen on every later one.
func (uc *AuthUsecaseImpl) createOrTouchUser(ctx context.Context, phone string) (*entity.User, error) {
	user, err := uc.UserRepository.FindByPhone(ctx, uc.DB, phone)
	if err == nil {
		if err := uc.UserRepository.TouchLastSeen(ctx, uc.DB, user.ID, time.Now()); err != nil {
			return nil, apperror.Storage("failed to update last seen", err)
		}
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Storage("failed to look up user", err)
	}

	newUser := &entity.User{
		Phone:    phone,
		Name:     DefaultUserName(phone),
		LastSeen: time.Now(),
	}
	if err := uc.UserRepository.Save(ctx, uc.DB, newUser); err != nil {
		return nil, apperror.Storage("failed to create user", err)
	}
	return newUser, nil
}
