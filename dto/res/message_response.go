package res

type MessageResponse struct {
	ID             string `json:"id"`
	SenderID       string `json:"senderId"`
	SenderName     string `json:"senderName,omitempty"`
	ReceiverID     string `json:"receiverId"`
	ReceiverName   string `json:"receiverName,omitempty"`
	Body           string `json:"message"`
	AttachmentURL  string `json:"attachmentUrl,omitempty"`
	AttachmentKind string `json:"attachmentType,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	ForwardedFrom  string `json:"forwardedFrom,omitempty"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"createdAt"`
}
