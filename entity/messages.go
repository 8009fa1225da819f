package entity

// Message is a direct message between two users. Body may be empty when an
// attachment is present, never both. The read flag is the only field that
// changes after creation.
type Message struct {
	BaseEntity
	SenderID       string  `json:"senderId" gorm:"type:varchar(255);not null;index"`
	ReceiverID     string  `json:"receiverId" gorm:"type:varchar(255);not null;index"`
	Body           string  `json:"body" gorm:"type:TEXT"`
	AttachmentURL  string  `json:"attachmentUrl,omitempty" gorm:"type:text"`
	AttachmentKind string  `json:"attachmentKind,omitempty" gorm:"type:varchar(50)"`
	AttachmentName string  `json:"attachmentName,omitempty" gorm:"type:varchar(255)"`
	ForwardedFrom  *string `json:"forwardedFrom,omitempty" gorm:"type:varchar(255)"`
	Read           bool    `json:"read" gorm:"default:false"`

	Sender   User `json:"-" gorm:"foreignKey:SenderID;references:ID"`
	Receiver User `json:"-" gorm:"foreignKey:ReceiverID;references:ID"`
}
