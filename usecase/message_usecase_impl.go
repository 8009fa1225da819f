package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"direct-chat-api/apperror"
	"direct-chat-api/dto/req"
	"direct-chat-api/dto/res"
	"direct-chat-api/entity"
)

const defaultHistoryLimit = 50

type MessageUsecaseImpl struct {
	MessageRepository MessageStore
	UserRepository    UserStore
	*gorm.DB
	*logrus.Logger
}

func NewMessageUsecase(messageRepository MessageStore, userRepository UserStore, DB *gorm.DB, logger *logrus.Logger) MessageUsecase {
	return &MessageUsecaseImpl{
		MessageRepository: messageRepository,
		UserRepository:    userRepository,
		DB:                DB,
		Logger:            logger,
	}
}

func (uc *MessageUsecaseImpl) SendMessage(ctx context.Context, senderID string, payload *req.MessageRequest) (res.MessageResponse, error) {
	if payload.ReceiverID == "" {
		return res.MessageResponse{}, apperror.Validation("receiverId is required")
	}
	if payload.Empty() {
		return res.MessageResponse{}, apperror.Validation("message must have a body or an attachment")
	}

	message := entity.Message{
		SenderID:   senderID,
		ReceiverID: payload.ReceiverID,
		Body:       payload.Body,
	}
	if payload.Attachment != nil {
		message.AttachmentURL = payload.Attachment.URL
		message.AttachmentKind = payload.Attachment.Kind
		message.AttachmentName = payload.Attachment.Name
	}

	if err := uc.MessageRepository.Save(ctx, uc.DB, &message); err != nil {
		uc.Logger.WithError(err).Errorf("failed to persist message from %s to %s", senderID, payload.ReceiverID)
		return res.MessageResponse{}, apperror.Storage("failed to send message", err)
	}

	uc.loadNames(ctx, &message)
	return ToMessageResponse(&message), nil
}

func (uc *MessageUsecaseImpl) GetConversations(ctx context.Context, userID string) ([]res.ConversationResponse, error) {
	rows, err := uc.MessageRepository.FindConversations(ctx, uc.DB, userID)
	if err != nil {
		return nil, apperror.Storage("failed to list conversations", err)
	}

	responses := make([]res.ConversationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, res.ConversationResponse{
			ID:              row.ID,
			Phone:           row.Phone,
			Name:            row.Name,
			Avatar:          row.Avatar,
			LastSeen:        row.LastSeen,
			LastMessage:     row.LastMessage,
			LastMessageTime: row.LastMessageTime,
			UnreadCount:     row.UnreadCount,
		})
	}
	return responses, nil
}

func (uc *MessageUsecaseImpl) GetMessages(ctx context.Context, userID, contactID string, limit int) ([]res.MessageResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	messages, err := uc.MessageRepository.FindBetween(ctx, uc.DB, userID, contactID, limit)
	if err != nil {
		return nil, apperror.Storage("failed to load history", err)
	}

	// Fetching history is the read acknowledgement for everything the
	// contact has sent so far.
	if _, err := uc.MessageRepository.MarkRead(ctx, uc.DB, userID, contactID); err != nil {
		uc.Logger.WithError(err).Warnf("failed to mark messages read for %s", userID)
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses, nil
}

func (uc *MessageUsecaseImpl) MarkRead(ctx context.Context, userID, contactID string) (int64, error) {
	affected, err := uc.MessageRepository.MarkRead(ctx, uc.DB, userID, contactID)
	if err != nil {
		return 0, apperror.Storage("failed to mark messages read", err)
	}
	return affected, nil
}

func (uc *MessageUsecaseImpl) ForwardMessage(ctx context.Context, senderID string, request *req.ForwardRequest) ([]res.MessageResponse, error) {
	if request.MessageID == "" || len(request.ReceiverIDs) == 0 {
		return nil, apperror.Validation("messageId and receiverIds are required")
	}

	var original entity.Message
	if err := uc.MessageRepository.FindById(ctx, uc.DB, &original, request.MessageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("message not found")
		}
		return nil, apperror.Storage("failed to load message", err)
	}

	// Each receiver gets an independent send; one failed insert does not
	// undo the others.
	responses := make([]res.MessageResponse, 0, len(request.ReceiverIDs))
	for _, receiverID := range request.ReceiverIDs {
		forwarded := CopyForForward(&original, senderID, receiverID)
		if err := uc.MessageRepository.Save(ctx, uc.DB, &forwarded); err != nil {
			uc.Logger.WithError(err).Errorf("failed to forward message %s to %s", original.ID, receiverID)
			return responses, apperror.Storage("failed to forward message", err)
		}
		uc.loadNames(ctx, &forwarded)
		responses = append(responses, ToMessageResponse(&forwarded))
	}
	return responses, nil
}

// loadNames fills the sender/receiver display names on a freshly inserted
// row; a miss leaves the names empty rather than failing the send.
func (uc *MessageUsecaseImpl) loadNames(ctx context.Context, message *entity.Message) {
	var sender, receiver entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &sender, message.SenderID); err == nil {
		message.Sender = sender
	}
	if err := uc.UserRepository.FindById(ctx, uc.DB, &receiver, message.ReceiverID); err == nil {
		message.Receiver = receiver
	}
}
