package bot

import (
	"context"
	"time"

	"spellbee/bot/picker"
	"spellbee/bot/token"

	"github.com/mymmrac/telego"
)

// CalendarHandler resumes the calendar screen from "n" tokens: month
// navigation re-renders the adjacent month, a day selection hands off to
// the time picker. Everything it needs is inside the token, so any server
// instance can serve any step of the flow.
type CalendarHandler struct {
	Sender Sender
}

func (h *CalendarHandler) CanHandle(u telego.Update) bool {
	return token.HasPrefix(callbackData(u), token.PrefixCalendar)
}

func (h *CalendarHandler) AuthRequired(telego.Update) bool { return true }

func (h *CalendarHandler) Handle(ctx context.Context, u telego.Update) error {
	chat := replyChat(u)
	tok := token.Decode(callbackData(u))
	now := time.Now()

	if year, month, ok := picker.NavTarget(tok); ok {
		markup := picker.MonthKeyboard(year, month, now, tok.Ref)
		return h.Sender.Send(ctx, chat, month.String()+":", markup)
	}

	if date, ok := picker.SelectedDate(tok); ok {
		period := picker.DefaultPeriod(date, now)
		markup := picker.PeriodKeyboard(date, period, now, tok.Ref)
		return h.Sender.Send(ctx, chat, "Pick a time on "+date.Format("Jan 2")+":", markup)
	}

	// Stale or malformed token: re-open the calendar at the current month.
	markup := picker.MonthKeyboard(now.Year(), now.Month(), now, tok.Ref)
	return h.Sender.Send(ctx, chat, "Pick a day:", markup)
}
