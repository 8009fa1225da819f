package usecase

import (
	"context"

	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
)

type MessageUsecase interface {
	// SendMessage persists a direct message; the returned response is the
	// durable row, safe to ack to the sender and push to the receiver.
	SendMessage(ctx context.Context, senderID string, payload *req.MessageRequest) (res.MessageResponse, error)
	GetConversations(ctx context.Context, userID string) ([]res.ConversationResponse, error)
	// GetMessages returns the ascending history between the caller and a
	// contact, marking the contact's unread messages to the caller as read.
	GetMessages(ctx context.Context, userID, contactID string, limit int) ([]res.MessageResponse, error)
	// MarkRead flips unread messages from contactID to userID; returns how
	// many rows changed.
	MarkRead(ctx context.Context, userID, contactID string) (int64, error)
	ForwardMessage(ctx context.Context, senderID string, request *req.ForwardRequest) ([]res.MessageResponse, error)
}
