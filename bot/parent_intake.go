package bot

import (
	"context"
	"log"

	"spellbee/models"
	"spellbee/tools"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// ParentIntakeHandler is the catch-all for plain text messages: anyone who
// writes to the bot without a command is treated as a parent interested in
// the game. First contact creates the Parent record and opens a lead; every
// contact answers with the intro and a deep link into the game. Registered
// last so every command and callback handler gets first refusal.
type ParentIntakeHandler struct {
	DB               *gorm.DB
	Sender           Sender
	GameURL          string
	WelcomeStickerID string
}

func (h *ParentIntakeHandler) CanHandle(u telego.Update) bool {
	text := messageText(u)
	return text != "" && commandName(text) == ""
}

func (h *ParentIntakeHandler) AuthRequired(telego.Update) bool { return false }

func (h *ParentIntakeHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)

	var parent models.Parent
	err := h.DB.Where("chat_id = ?", chat).First(&parent).Error
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
		parent = models.Parent{ChatID: chat, Name: senderName(u)}
		if err := h.DB.Create(&parent).Error; err != nil {
			return err
		}
		if err := h.DB.Create(&models.Lead{ParentID: parent.ID, Status: models.LEAD_STATUS_NEW}).Error; err != nil {
			return err
		}

		if h.WelcomeStickerID != "" {
			// A missing sticker must not break the intake reply.
			if err := h.Sender.SendSticker(ctx, chat, h.WelcomeStickerID); err != nil {
				log.Printf("parent intake: welcome sticker: %v", err)
			}
		}
	}

	markup := &telego.InlineKeyboardMarkup{InlineKeyboard: [][]telego.InlineKeyboardButton{{
		{Text: "Play Spellbee", URL: tools.GameDeepLink(h.GameURL, parent.ID)},
	}}}

	text := "Hi! I'm the Spellbee assistant.\n" +
		"Tap the button below to try the spelling game with your kid, " +
		"or leave your phone number and we will call you back."
	return h.Sender.Send(ctx, chat, text, markup)
}
