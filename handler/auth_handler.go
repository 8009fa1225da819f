package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	usecase.UserUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, userUsecase usecase.UserUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, UserUsecase: userUsecase, Logger: logger}
}

func (handler *AuthHandler) SendCode(ctx *fiber.Ctx) error {
	payload := new(req.SendCodeRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	response, err := handler.AuthUsecase.SendCode(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("failed to send verification code: %v", err)
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) VerifyCode(ctx *fiber.Ctx) error {
	payload := new(req.VerifyRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	response, err := handler.AuthUsecase.VerifyCode(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("failed to verify code: %v", err)
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) UpdateProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	payload := new(req.EditProfileRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	user, err := handler.UserUsecase.UpdateProfile(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("failed to update profile: %v", err)
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}
