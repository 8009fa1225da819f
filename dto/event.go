package dto

import (
	"encoding/json"

	"direct-chat-api/enum"
)

// Envelope frames every event on the realtime channel in both directions.
type Envelope struct {
	Event enum.Event      `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// OutEnvelope is the server-to-client frame; Data is marshalled as-is.
type OutEnvelope struct {
	Event enum.Event  `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

type PresenceEvent struct {
	UserID string `json:"userId"`
	Online bool   `json:"online"`
}

type TypingEvent struct {
	UserID string `json:"userId"`
	Typing bool   `json:"typing"`
}

type ReadReceiptEvent struct {
	UserID string `json:"userId"`
}

type ErrorEvent struct {
	Message string `json:"message"`
}

type TargetedEvent struct {
	ReceiverID string `json:"receiverId"`
}

type MarkReadEvent struct {
	ContactID string `json:"contactId"`
}
