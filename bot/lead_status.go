package bot

import (
	"context"
	"fmt"

	"spellbee/bot/token"
	"spellbee/models"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// LeadStatusHandler owns two parent-card callbacks: "requested|<parentID>"
// flips the lead to call-requested, "parent_id|<parentID>" re-sends the
// parent card with its lead state and action buttons.
type LeadStatusHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *LeadStatusHandler) CanHandle(u telego.Update) bool {
	payload, _ := token.Split(callbackData(u))
	return payload == payloadRequested || payload == payloadParentCard
}

func (h *LeadStatusHandler) AuthRequired(telego.Update) bool { return true }

func (h *LeadStatusHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	payload, ref := token.Split(callbackData(u))

	parent, err := parentByRef(h.DB, ref)
	if err != nil {
		return err
	}
	if parent == nil {
		return h.Sender.Send(ctx, chat, "That parent record no longer exists.", nil)
	}

	if payload == payloadRequested {
		if err := h.DB.Model(&models.Lead{}).
			Where("parent_id = ?", parent.ID).
			Update("status", models.LEAD_STATUS_REQUESTED).Error; err != nil {
			return err
		}
		return h.Sender.Send(ctx, chat,
			"Lead for "+parentLabel(parent)+" marked as call requested.", nil)
	}

	var lead models.Lead
	status := "no lead"
	if err := h.DB.Where("parent_id = ?", parent.ID).First(&lead).Error; err == nil {
		status = lead.Status
	}

	code := parent.GameCode
	if code == "" {
		code = "—"
	}
	text := fmt.Sprintf("👤 %s\nPhone: %s\nGame code: %s\nLead: %s",
		parentLabel(parent), orDash(parent.Phone), code, status)

	markup := &telego.InlineKeyboardMarkup{InlineKeyboard: [][]telego.InlineKeyboardButton{
		parentActions(parent.ID),
	}}
	return h.Sender.Send(ctx, chat, text, markup)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
