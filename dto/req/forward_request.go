package req

type ForwardRequest struct {
	MessageID   string   `json:"messageId" validate:"required"`
	ReceiverIDs []string `json:"receiverIds" validate:"required,min=1,dive,required"`
}
