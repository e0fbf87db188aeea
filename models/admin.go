package models

import "time"

// Admin is a Telegram user allowed to run the privileged bot commands and
// callback flows. The first admin registers through the bootstrap code.
type Admin struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ChatID    int64      `gorm:"not null;unique_index" json:"chat_id"`
	Name      string     `gorm:"default:''" json:"name"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
