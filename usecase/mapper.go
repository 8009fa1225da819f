package usecase

import (
	"fmt"

	"direct-chat-api/dto/res"
	"direct-chat-api/entity"
)

const timeLayout = "2006-01-02 15:04:05"

func ToUserResponse(user *entity.User) res.UserResponse {
	return res.UserResponse{
		ID:       user.ID,
		Phone:    user.Phone,
		Name:     user.Name,
		Avatar:   user.Avatar,
		LastSeen: user.LastSeen.Format(timeLayout),
	}
}

func ToMessageResponse(message *entity.Message) res.MessageResponse {
	response := res.MessageResponse{
		ID:             message.ID,
		SenderID:       message.SenderID,
		SenderName:     message.Sender.Name,
		ReceiverID:     message.ReceiverID,
		ReceiverName:   message.Receiver.Name,
		Body:           message.Body,
		AttachmentURL:  message.AttachmentURL,
		AttachmentKind: message.AttachmentKind,
		AttachmentName: message.AttachmentName,
		Read:           message.Read,
		CreatedAt:      message.CreatedAt.Format(timeLayout),
	}
	if message.ForwardedFrom != nil {
		response.ForwardedFrom = *message.ForwardedFrom
	}
	return response
}

// CopyForForward builds the row a forward creates: body and attachment copied
// verbatim, provenance pointing at the original, read flag reset.
func CopyForForward(original *entity.Message, senderID, receiverID string) entity.Message {
	originalID := original.ID
	return entity.Message{
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Body:           original.Body,
		AttachmentURL:  original.AttachmentURL,
		AttachmentKind: original.AttachmentKind,
		AttachmentName: original.AttachmentName,
		ForwardedFrom:  &originalID,
	}
}

// DefaultUserName names a user created from a bare phone number.
func DefaultUserName(phone string) string {
	suffix := phone
	if len(phone) > 4 {
		suffix = phone[len(phone)-4:]
	}
	return fmt.Sprintf("User %s", suffix)
}
