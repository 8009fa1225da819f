package req

// MessageRequest is the send_message payload on the realtime channel and the
// body shape for persisted sends in general. Body and Attachment may not both
// be absent.
type MessageRequest struct {
	ReceiverID string      `json:"receiverId" validate:"required"`
	Body       string      `json:"message"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

type Attachment struct {
	URL  string `json:"url" validate:"required"`
	Kind string `json:"type"`
	Name string `json:"name"`
}

func (r *MessageRequest) Empty() bool {
	return r.Body == "" && (r.Attachment == nil || r.Attachment.URL == "")
}
