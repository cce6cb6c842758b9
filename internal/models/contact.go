package models

import "time"

// ContactModel is a message submitted through the public contact form.
// It never has an author.
type ContactModel struct {
	Base
	Name         string     `json:"name"          gorm:"not null"`
	Email        string     `json:"email"         gorm:"not null"`
	Subject      string     `json:"subject"       gorm:"not null"`
	Message      string     `json:"message"       gorm:"type:text;not null"`
	IsRead       bool       `json:"is_read"       gorm:"default:false;index"`
	IsReplied    bool       `json:"is_replied"    gorm:"default:false"`
	ReplyMessage string     `json:"reply_message" gorm:"type:text"`
	RepliedAt    *time.Time `json:"replied_at"`
}

func (ContactModel) TableName() string { return "contacts" }
