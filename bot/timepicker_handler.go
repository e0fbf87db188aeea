package bot

import (
	"context"
	"fmt"
	"time"

	"spellbee/bot/picker"
	"spellbee/bot/token"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// TimePickerHandler resumes the time screen from "pt" and "t" tokens:
// period switches re-render the slot menu, "back" returns to the calendar
// at the month of the selected date, and a concrete time is terminal: it
// creates the follow-up reminder and confirms.
type TimePickerHandler struct {
	DB     *gorm.DB
	Sender Sender
}

func (h *TimePickerHandler) CanHandle(u telego.Update) bool {
	raw := callbackData(u)
	return token.HasPrefix(raw, token.PrefixPeriod) || token.HasPrefix(raw, token.PrefixTime)
}

func (h *TimePickerHandler) AuthRequired(telego.Update) bool { return true }

func (h *TimePickerHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	tok := token.Decode(callbackData(u))
	now := time.Now()

	if tok.Prefix == token.PrefixPeriod {
		date, err := picker.ParseDate(tok.Field(1))
		if err != nil {
			return h.Sender.Send(ctx, chat, "That keyboard has expired, start over with /search.", nil)
		}
		markup := picker.PeriodKeyboard(date, tok.Field(0), now, tok.Ref)
		return h.Sender.Send(ctx, chat, "Pick a time on "+date.Format("Jan 2")+":", markup)
	}

	if date, ok := picker.BackDate(tok); ok {
		markup := picker.MonthKeyboard(date.Year(), date.Month(), now, tok.Ref)
		return h.Sender.Send(ctx, chat, "Pick a day:", markup)
	}

	at, ok := picker.SelectedTime(tok)
	if !ok {
		return h.Sender.Send(ctx, chat, "That keyboard has expired, start over with /search.", nil)
	}

	parent, err := parentByRef(h.DB, tok.Ref)
	if err != nil {
		return err
	}
	if parent == nil {
		return h.Sender.Send(ctx, chat, "That parent record no longer exists.", nil)
	}

	reminder, err := scheduleFollowUp(h.DB, chat, parent, at)
	if err != nil {
		return err
	}

	return h.Sender.Send(ctx, chat,
		fmt.Sprintf("✅ Follow-up #%d with %s set for %s.",
			reminder.ID, parentLabel(parent), at.Format("Mon, Jan 2 at 15:04")), nil)
}
