package models

import "time"

/************************************************
/**** MARK: LEAD STATUS ****/
/************************************************/
const LEAD_STATUS_NEW = "new"
const LEAD_STATUS_REQUESTED = "requested"
const LEAD_STATUS_SCHEDULED = "scheduled"
const LEAD_STATUS_WON = "won"
const LEAD_STATUS_LOST = "lost"

// Lead tracks the sales state of one parent contact. There is at most one
// open lead per parent; status moves through the LEAD_STATUS_* values.
type Lead struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ParentID  int64      `gorm:"not null;index" json:"parent_id"`
	Status    string     `gorm:"not null;default:'new';index" json:"status"`
	Note      string     `gorm:"type:text" json:"note"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// IsLeadStatusValid reports whether s is one of the known lead statuses.
func IsLeadStatusValid(s string) bool {
	switch s {
	case LEAD_STATUS_NEW, LEAD_STATUS_REQUESTED, LEAD_STATUS_SCHEDULED,
		LEAD_STATUS_WON, LEAD_STATUS_LOST:
		return true
	}
	return false
}
