package res

type ConversationResponse struct {
	ID              string `json:"id"`
	Phone           string `json:"phone"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar,omitempty"`
	LastSeen        string `json:"last_seen"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	UnreadCount     int64  `json:"unread_count"`
}
