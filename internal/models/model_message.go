package models

import "time"

// UserMessage is an internal message from an employee to a subscriber.
type UserMessage struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	SenderID   uint        `gorm:"column:sender_id;not null;index" json:"sender_id"`
	Sender     *Employee   `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	ReceiverID uint        `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Receiver   *Subscriber `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`

	Body   string    `gorm:"column:body;type:text;not null" json:"message"`
	SentAt time.Time `gorm:"column:sent_at;autoCreateTime" json:"sent_at"`
	Read   bool      `gorm:"column:read;not null;default:false" json:"read"`
}

func (UserMessage) TableName() string {
	return "user_message"
}

// ContactMessage is submitted through the public website contact form.
type ContactMessage struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	ContactNumber string    `gorm:"column:contact_number;type:varchar(20)" json:"contact_number"`
	Body          string    `gorm:"column:body;type:text;not null" json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_message"
}
