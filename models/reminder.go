package models

import "time"

/************************************************
/**** MARK: REMINDER DEFAULTS ****/
/************************************************/
const REMINDER_MAX_ATTEMPTS_DEFAULT = 3

// Reminder is a scheduled follow-up notification for a Telegram recipient.
// Rows are created by the scheduling handlers (duplicates are allowed) and
// are mutated only by the reminders worker: AttemptCount/LastAttemptAt move
// before every send, IsAttended flips only after a confirmed delivery.
// Reminders are never deleted; once attended or out of attempts the row
// simply stops matching the due-set query.
type Reminder struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	RecipientID   string     `gorm:"not null;index" json:"recipient_id"` // Telegram chat id as decimal string
	Message       string     `gorm:"type:text" json:"message"`
	ScheduledAt   time.Time  `gorm:"not null;index" json:"scheduled_at"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	IsAttended    bool       `gorm:"not null;default:false" json:"is_attended"`
	AttemptCount  int        `gorm:"not null;default:0" json:"attempt_count"`
	MaxAttempts   int        `gorm:"not null;default:3" json:"max_attempts"`
	LastAttemptAt *time.Time `json:"last_attempt_at"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}
