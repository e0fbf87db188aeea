package bot

import (
	"context"
	"strings"

	"spellbee/models"
	"spellbee/tools"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

const searchResultLimit = 10

// SearchHandler handles "/search <query>": parents matched by name or
// phone substring, each with the standard action buttons.
type SearchHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *SearchHandler) CanHandle(u telego.Update) bool {
	return commandName(messageText(u)) == "/search"
}

func (h *SearchHandler) AuthRequired(telego.Update) bool { return true }

func (h *SearchHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	query := strings.TrimSpace(strings.TrimPrefix(messageText(u), "/search"))

	if query == "" {
		return h.Sender.Send(ctx, chat, "Usage: /search <name or phone>", nil)
	}

	pattern := "%" + query + "%"
	if phone := tools.NormalizePhone(query); phone != "" {
		pattern = "%" + phone + "%"
	}

	var parents []models.Parent
	if err := h.DB.
		Where("name LIKE ? OR phone LIKE ?", "%"+query+"%", pattern).
		Order("id asc").
		Limit(searchResultLimit).
		Find(&parents).Error; err != nil {
		return err
	}

	if len(parents) == 0 {
		return h.Sender.Send(ctx, chat, "No parents match \""+query+"\".", nil)
	}

	rows := make([][]telego.InlineKeyboardButton, 0, len(parents))
	var b strings.Builder
	b.WriteString("Found:\n")
	for _, p := range parents {
		b.WriteString(parentLabel(&p))
		if p.Phone != "" {
			b.WriteString("  " + p.Phone)
		}
		b.WriteString("\n")
		rows = append(rows, parentActions(p.ID))
	}

	return h.Sender.Send(ctx, chat, b.String(), &telego.InlineKeyboardMarkup{InlineKeyboard: rows})
}
