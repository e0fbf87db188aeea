package tools

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const REMINDER_MESSAGE_MIN_LEN = 5
const REMINDER_MESSAGE_MAX_LEN = 500

var recipientIDPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

// ValidateRecipientID reports whether s is a positive decimal Telegram
// chat id.
func ValidateRecipientID(s string) bool {
	return recipientIDPattern.MatchString(strings.TrimSpace(s))
}

// CheckReminderMessage returns "" when the message is acceptable, otherwise
// the reason it is not.
func CheckReminderMessage(s string) string {
	n := len(strings.TrimSpace(s))
	if n < REMINDER_MESSAGE_MIN_LEN {
		return fmt.Sprintf("message must be at least %d characters", REMINDER_MESSAGE_MIN_LEN)
	}
	if n > REMINDER_MESSAGE_MAX_LEN {
		return fmt.Sprintf("message must be at most %d characters", REMINDER_MESSAGE_MAX_LEN)
	}
	return ""
}

// ParseScheduleTime parses an ISO-8601 timestamp. Past instants are
// accepted on purpose: validation only checks parseability, eligibility is
// the reminders worker's business.
func ParseScheduleTime(s string) (time.Time, error) {
	at, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("dateTime must be ISO-8601: %w", err)
	}
	return at, nil
}
