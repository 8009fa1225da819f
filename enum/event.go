package enum

type Event string

// Inbound events accepted from an authenticated connection.
const (
	EventSendMessage Event = "send_message"
	EventTyping      Event = "typing"
	EventStopTyping  Event = "stop_typing"
	EventMarkRead    Event = "mark_read"
)

// Outbound events pushed by the server.
const (
	EventMessageSent  Event = "message_sent"
	EventNewMessage   Event = "new_message"
	EventUserTyping   Event = "user_typing"
	EventMessagesRead Event = "messages_read"
	EventUserOnline   Event = "user_online"
	EventUserOffline  Event = "user_offline"
	EventError        Event = "error"
)
