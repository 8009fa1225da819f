package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
	"direct-chat-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	users, err := handler.UserUsecase.GetAllUsers(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to list users")
		return err
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "successfully listed users",
		StatusCode: fiber.StatusOK,
		Data:       users,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) FindByPhone(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	payload := new(req.FindUserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	user, err := handler.UserUsecase.FindOrCreateByPhone(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to find user by phone")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (handler *UserHandler) RenameContact(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	payload := new(req.RenameContactRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	contact, err := handler.UserUsecase.RenameContact(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to rename contact")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"contact": contact,
	})
}
