package models

import "time"

// Note is an operator annotation that can be attached to subscribers.
type Note struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Body     string    `gorm:"column:body;type:text;not null" json:"body"`
	NoteDate time.Time `gorm:"column:note_date;type:date;not null" json:"note_date"`
}

func (Note) TableName() string {
	return "note"
}

// NoteSubscriber links a note to a subscriber.
type NoteSubscriber struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	NoteID       uint        `gorm:"column:note_id;not null;index" json:"note_id"`
	Note         *Note       `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE" json:"note,omitempty"`
	SubscriberID uint        `gorm:"column:subscriber_id;not null;index" json:"subscriber_id"`
	Subscriber   *Subscriber `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE" json:"-"`
}

func (NoteSubscriber) TableName() string {
	return "note_subscriber"
}
