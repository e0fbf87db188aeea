package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"spellbee/bot/picker"
	"spellbee/bot/token"
	"spellbee/models"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// ScheduleHandler starts the follow-up flows from a parent's action
// buttons: "pick_date_time|<parentID>" opens the calendar, and
// "quick_scheduler|<parentID>" skips it entirely and books tomorrow 10:00.
type ScheduleHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *ScheduleHandler) CanHandle(u telego.Update) bool {
	payload, _ := token.Split(callbackData(u))
	return payload == payloadPickDateTime || payload == payloadQuickScheduler
}

func (h *ScheduleHandler) AuthRequired(telego.Update) bool { return true }

func (h *ScheduleHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	payload, ref := token.Split(callbackData(u))
	now := time.Now()

	parent, err := parentByRef(h.DB, ref)
	if err != nil {
		return err
	}
	if parent == nil {
		return h.Sender.Send(ctx, chat, "That parent record no longer exists.", nil)
	}

	if payload == payloadQuickScheduler {
		at := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		reminder, err := scheduleFollowUp(h.DB, chat, parent, at)
		if err != nil {
			return err
		}
		return h.Sender.Send(ctx, chat,
			fmt.Sprintf("⚡ Follow-up #%d set for %s.", reminder.ID, at.Format("Mon, Jan 2 at 15:04")), nil)
	}

	markup := picker.MonthKeyboard(now.Year(), now.Month(), now, ref)
	return h.Sender.Send(ctx, chat, "Pick a day to follow up with "+parentLabel(parent)+":", markup)
}

// scheduleFollowUp creates the reminder a scheduling flow ends in. The
// recipient is the scheduling admin: reminders nudge the admin to call the
// parent back. Duplicate reminders for the same parent are allowed.
func scheduleFollowUp(db *gorm.DB, adminChat int64, parent *models.Parent, at time.Time) (models.Reminder, error) {
	message := "Call back " + parentLabel(parent)
	if parent.Phone != "" {
		message += " (" + parent.Phone + ")"
	}

	reminder := models.Reminder{
		RecipientID: strconv.FormatInt(adminChat, 10),
		Message:     message,
		ScheduledAt: at,
		IsActive:    true,
		MaxAttempts: models.REMINDER_MAX_ATTEMPTS_DEFAULT,
	}
	if err := db.Create(&reminder).Error; err != nil {
		return models.Reminder{}, err
	}

	if err := db.Model(&models.Lead{}).
		Where("parent_id = ? AND status IN (?)", parent.ID,
			[]string{models.LEAD_STATUS_NEW, models.LEAD_STATUS_REQUESTED}).
		Update("status", models.LEAD_STATUS_SCHEDULED).Error; err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}
