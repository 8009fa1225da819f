package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/realtime"
	"direct-chat-api/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	Router *realtime.Router
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, router *realtime.Router, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{
		MessageUsecase: messageUsecase,
		Router:         router,
		Logger:         logger,
	}
}

func (handler *MessageHandler) GetConversations(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	conversations, err := handler.MessageUsecase.GetConversations(ctx.Context(), userID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to list conversations")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(conversations)
}

func (handler *MessageHandler) GetMessages(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	contactID := ctx.Params("contactId")
	if contactID == "" {
		return apperror.Validation("contactId is required")
	}
	limit := ctx.QueryInt("limit", 50)

	messages, err := handler.MessageUsecase.GetMessages(ctx.Context(), userID, contactID, limit)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to load history")
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(messages)
}

// ForwardMessage creates one independent message per receiver and pushes each
// through the realtime delivery path, so forwarded messages reach online
// receivers under the same rule as direct sends.
func (handler *MessageHandler) ForwardMessage(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)

	payload := new(req.ForwardRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return apperror.Validation("invalid request body")
	}

	forwarded, err := handler.MessageUsecase.ForwardMessage(ctx.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("failed to forward message")
		return err
	}

	for _, message := range forwarded {
		handler.Router.DeliverMessage(message.ReceiverID, message)
	}

	return ctx.Status(fiber.StatusOK).JSON(forwarded)
}
