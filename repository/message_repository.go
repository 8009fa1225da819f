package repository

import (
	"context"

	"gorm.io/gorm"

	"direct-chat-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// ConversationRow is the raw shape of the derived conversation listing.
type ConversationRow struct {
	ID              string
	Phone           string
	Name            string
	Avatar          string
	LastSeen        string
	LastMessage     string
	LastMessageTime string
	UnreadCount     int64
}

// FindConversations derives the conversation list for a user: every peer with
// at least one message in either direction, with last message and unread
// count computed, newest activity first. A contact nickname overrides the
// peer's display name.
func (repository MessageRepository) FindConversations(ctx context.Context, db *gorm.DB, userID string) ([]ConversationRow, error) {
	const query = `
		SELECT DISTINCT
			u.id,
			u.phone,
			COALESCE(NULLIF(c.nickname, ''), u.name) AS name,
			COALESCE(u.avatar, '') AS avatar,
			COALESCE(u.last_seen::text, '') AS last_seen,
			COALESCE((SELECT body FROM t_message
			 WHERE (sender_id = @self AND receiver_id = u.id)
			    OR (sender_id = u.id AND receiver_id = @self)
			 ORDER BY created_at DESC LIMIT 1), '') AS last_message,
			COALESCE((SELECT created_at::text FROM t_message
			 WHERE (sender_id = @self AND receiver_id = u.id)
			    OR (sender_id = u.id AND receiver_id = @self)
			 ORDER BY created_at DESC LIMIT 1), '') AS last_message_time,
			(SELECT COUNT(*) FROM t_message
			 WHERE sender_id = u.id AND receiver_id = @self AND read = false) AS unread_count
		FROM t_user u
		LEFT JOIN t_contact c ON c.user_id = @self AND c.contact_id = u.id
		WHERE u.id <> @self
			AND EXISTS (
				SELECT 1 FROM t_message
				WHERE (sender_id = @self AND receiver_id = u.id)
				   OR (sender_id = u.id AND receiver_id = @self)
			)
		ORDER BY last_message_time DESC`

	var rows []ConversationRow
	err := db.WithContext(ctx).
		Raw(query, map[string]interface{}{"self": userID}).
		Scan(&rows).Error
	return rows, err
}

// FindBetween returns up to limit newest messages between the pair, reordered
// chronologically ascending.
func (repository MessageRepository) FindBetween(ctx context.Context, db *gorm.DB, userID, contactID string, limit int) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, contactID, contactID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// MarkRead flips read=false to true for messages sent by contactID to userID
// only; already-read rows and the opposite direction are untouched. Returns
// the number of rows changed.
func (repository MessageRepository) MarkRead(ctx context.Context, db *gorm.DB, userID, contactID string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND read = false", contactID, userID).
		Update("read", true)
	return result.RowsAffected, result.Error
}
