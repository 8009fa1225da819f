package entity

import "time"

type User struct {
	BaseEntity
	Phone    string    `json:"phone" gorm:"unique;type:varchar(20);not null"`
	Name     string    `json:"name" gorm:"type:varchar(100)"`
	Avatar   string    `json:"avatar,omitempty" gorm:"type:text"`
	LastSeen time.Time `json:"lastSeen" gorm:"autoCreateTime"`

	Sent     []Message `json:"-" gorm:"foreignKey:SenderID"`
	Received []Message `json:"-" gorm:"foreignKey:ReceiverID"`
}
