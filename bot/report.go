package bot

import (
	"context"
	"fmt"
	"strings"

	"spellbee/models"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// ReportHandler handles "/report": a one-message summary of parents, leads
// per status and reminder delivery state.
type ReportHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *ReportHandler) CanHandle(u telego.Update) bool {
	return commandName(messageText(u)) == "/report"
}

func (h *ReportHandler) AuthRequired(telego.Update) bool { return true }

func (h *ReportHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)

	var parents int
	if err := h.DB.Model(&models.Parent{}).Count(&parents).Error; err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Spellbee report\n\nParents: %d\n\nLeads:\n", parents)

	for _, status := range []string{
		models.LEAD_STATUS_NEW, models.LEAD_STATUS_REQUESTED, models.LEAD_STATUS_SCHEDULED,
		models.LEAD_STATUS_WON, models.LEAD_STATUS_LOST,
	} {
		var n int
		if err := h.DB.Model(&models.Lead{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return err
		}
		fmt.Fprintf(&b, "  %s: %d\n", status, n)
	}

	var pending, attended int
	if err := h.DB.Model(&models.Reminder{}).
		Where("is_active = ? AND is_attended = ?", true, false).
		Count(&pending).Error; err != nil {
		return err
	}
	if err := h.DB.Model(&models.Reminder{}).
		Where("is_attended = ?", true).
		Count(&attended).Error; err != nil {
		return err
	}
	fmt.Fprintf(&b, "\nReminders: %d pending, %d delivered", pending, attended)

	return h.Sender.Send(ctx, chat, b.String(), nil)
}
