package bot

import (
	"context"
	"strings"

	"spellbee/models"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// AddAdminHandler registers the sender as an admin when they message
// "/admin <code>" with the configured bootstrap code. It runs without
// authorization: the very first admin has nobody to vouch for them.
type AddAdminHandler struct {
	DB            *gorm.DB
	Sender        Sender
	BootstrapCode string
}

func (h *AddAdminHandler) CanHandle(u telego.Update) bool {
	return commandName(messageText(u)) == "/admin"
}

func (h *AddAdminHandler) AuthRequired(telego.Update) bool { return false }

func (h *AddAdminHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	parts := strings.Fields(messageText(u))

	if len(parts) != 2 {
		return h.Sender.Send(ctx, chat, "Usage: /admin <code>", nil)
	}
	if h.BootstrapCode == "" || parts[1] != h.BootstrapCode {
		return h.Sender.Send(ctx, chat, "Invalid bootstrap code.", nil)
	}

	var existing models.Admin
	if err := h.DB.Where("chat_id = ?", chat).First(&existing).Error; err == nil {
		return h.Sender.Send(ctx, chat, "You already have admin access.", nil)
	}

	admin := models.Admin{ChatID: chat, Name: senderName(u)}
	if err := h.DB.Create(&admin).Error; err != nil {
		return err
	}

	return h.Sender.Send(ctx, chat, "Welcome aboard! You now have admin access.", nil)
}

// commandName returns the leading "/word" of a message, "" when the message
// is not a command.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	if i := strings.IndexAny(text, " \t\n"); i >= 0 {
		return text[:i]
	}
	return text
}
