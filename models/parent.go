package models

import "time"

// Parent is a contact who wrote to the bot about the spelling game.
// ChatID is the Telegram chat the intake conversation happened in; GameCode
// is the access code an admin attached (empty until then).
type Parent struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ChatID    int64      `gorm:"not null;index" json:"chat_id"`
	Name      string     `gorm:"default:''" json:"name"`
	Phone     string     `gorm:"default:'';index" json:"phone"`
	GameCode  string     `gorm:"default:''" json:"game_code"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
