package bot

import (
	"context"
	"fmt"
	"strings"

	"spellbee/models"
	"spellbee/tools"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// AttachCodeHandler handles "/attach <parentID> [code]": it attaches a game
// access code to a parent record, generating one when the admin does not
// supply it, and marks the lead won.
type AttachCodeHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *AttachCodeHandler) CanHandle(u telego.Update) bool {
	return commandName(messageText(u)) == "/attach"
}

func (h *AttachCodeHandler) AuthRequired(telego.Update) bool { return true }

func (h *AttachCodeHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	parts := strings.Fields(messageText(u))

	if len(parts) < 2 || len(parts) > 3 {
		return h.Sender.Send(ctx, chat, "Usage: /attach <parentID> [code]", nil)
	}

	parent, err := parentByRef(h.DB, parts[1])
	if err != nil {
		return err
	}
	if parent == nil {
		return h.Sender.Send(ctx, chat, "Parent "+parts[1]+" not found.", nil)
	}

	code := tools.RandomString(8)
	if len(parts) == 3 {
		code = strings.ToUpper(parts[2])
	}

	parent.GameCode = code
	if err := h.DB.Save(parent).Error; err != nil {
		return err
	}

	// The lead is won once the family has access.
	if err := h.DB.Model(&models.Lead{}).
		Where("parent_id = ?", parent.ID).
		Update("status", models.LEAD_STATUS_WON).Error; err != nil {
		return err
	}

	return h.Sender.Send(ctx, chat,
		fmt.Sprintf("Code %s attached to %s.", code, parentLabel(parent)), nil)
}
