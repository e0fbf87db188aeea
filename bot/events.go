package bot

import (
	"strings"

	"github.com/mymmrac/telego"
)

// Recognized reports whether the update carries one of the payload arms
// this bot knows how to classify. Anything else never reaches a handler.
func Recognized(u telego.Update) bool {
	return u.Message != nil ||
		u.CallbackQuery != nil ||
		u.InlineQuery != nil ||
		u.ChosenInlineResult != nil ||
		u.ShippingQuery != nil ||
		u.PreCheckoutQuery != nil ||
		u.Poll != nil ||
		u.PollAnswer != nil
}

// FromID resolves the originating user id regardless of which union arm is
// set. Polls carry no originator and resolve to 0.
func FromID(u telego.Update) int64 {
	switch {
	case u.Message != nil && u.Message.From != nil:
		return u.Message.From.ID
	case u.CallbackQuery != nil:
		return u.CallbackQuery.From.ID
	case u.InlineQuery != nil:
		return u.InlineQuery.From.ID
	case u.ChosenInlineResult != nil:
		return u.ChosenInlineResult.From.ID
	case u.ShippingQuery != nil:
		return u.ShippingQuery.From.ID
	case u.PreCheckoutQuery != nil:
		return u.PreCheckoutQuery.From.ID
	case u.PollAnswer != nil && u.PollAnswer.User != nil:
		return u.PollAnswer.User.ID
	}
	return 0
}

// messageText returns the trimmed text of a message update, "" otherwise.
func messageText(u telego.Update) string {
	if u.Message == nil {
		return ""
	}
	return strings.TrimSpace(u.Message.Text)
}

// callbackData returns the raw interaction token of a callback update.
func callbackData(u telego.Update) string {
	if u.CallbackQuery == nil {
		return ""
	}
	return u.CallbackQuery.Data
}

// replyChat is the chat outbound replies go to. The bot talks to people in
// private chats, so for callback updates the sender's id is the chat id.
func replyChat(u telego.Update) int64 {
	if u.Message != nil {
		return u.Message.Chat.ID
	}
	return FromID(u)
}

// senderName builds a display name from a message sender, "" when absent.
func senderName(u telego.Update) string {
	if u.Message == nil || u.Message.From == nil {
		return ""
	}
	return strings.TrimSpace(u.Message.From.FirstName + " " + u.Message.From.LastName)
}
