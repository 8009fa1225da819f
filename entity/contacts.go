package entity

// Contact is created lazily, the first time an owner sets a nickname for
// another user. Conversations do not require a contact row to exist.
type Contact struct {
	BaseEntity
	UserID    string `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:idx_contact_owner_contact"`
	ContactID string `json:"contactId" gorm:"type:varchar(255);not null;uniqueIndex:idx_contact_owner_contact"`
	Nickname  string `json:"nickname" gorm:"type:varchar(100)"`

	User    User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Contact User `json:"-" gorm:"foreignKey:ContactID;references:ID"`
}
