package picker

import (
	"fmt"
	"strings"
	"time"

	"spellbee/bot/token"

	"github.com/mymmrac/telego"
)

/************************************************
/**** MARK: PERIODS ****/
/************************************************/
const PERIOD_MORNING = "morning"
const PERIOD_AFTERNOON = "afternoon"
const PERIOD_EVENING = "evening"

// BackField is the literal second field of a "t" token that returns to the
// calendar instead of selecting a time.
const BackField = "back"

var periodOrder = [3]string{PERIOD_MORNING, PERIOD_AFTERNOON, PERIOD_EVENING}

// Hourly slots per period.
var periodSlots = map[string][]int{
	PERIOD_MORNING:   {8, 9, 10, 11},
	PERIOD_AFTERNOON: {12, 13, 14, 15},
	PERIOD_EVENING:   {16, 17, 18, 19, 20, 21},
}

const slotsPerRow = 4

// DefaultPeriod picks the period the picker opens on for a selected date:
// past dates land on evening, future dates on morning, today on whichever
// period the current hour falls in.
func DefaultPeriod(date, now time.Time) string {
	day := midnight(date)
	today := midnight(now)

	switch {
	case day.Before(today):
		return PERIOD_EVENING
	case day.After(today):
		return PERIOD_MORNING
	}

	switch h := now.Hour(); {
	case h < 12:
		return PERIOD_MORNING
	case h < 16:
		return PERIOD_AFTERNOON
	default:
		return PERIOD_EVENING
	}
}

// PeriodKeyboard renders the time picker for a selected date: a period
// selector row, the hourly slots of the requested period, and a back
// control returning to the calendar. Any slot whose instant is not strictly
// in the future renders inert; when the date itself is past, everything
// does. ref is propagated onto every actionable control.
func PeriodKeyboard(date time.Time, period string, now time.Time, ref string) *telego.InlineKeyboardMarkup {
	if _, ok := periodSlots[period]; !ok {
		period = DefaultPeriod(date, now)
	}

	dateField := FormatDate(date)
	rows := make([][]telego.InlineKeyboardButton, 0, 4)

	selector := make([]telego.InlineKeyboardButton, 0, len(periodOrder))
	for _, p := range periodOrder {
		label := strings.ToUpper(p[:1]) + p[1:]
		if p == period {
			label = "• " + label
		}
		selector = append(selector, telego.InlineKeyboardButton{
			Text: label,
			CallbackData: dataOrInert(token.Token{
				Prefix: token.PrefixPeriod,
				Fields: []string{p, dateField},
				Ref:    ref,
			}),
		})
	}
	rows = append(rows, selector)

	row := make([]telego.InlineKeyboardButton, 0, slotsPerRow)
	for _, hour := range periodSlots[period] {
		slot := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		label := fmt.Sprintf("%02d:00", hour)
		if !slot.After(now) {
			row = append(row, inertButton())
		} else {
			row = append(row, telego.InlineKeyboardButton{
				Text: label,
				CallbackData: dataOrInert(token.Token{
					Prefix: token.PrefixTime,
					Fields: []string{label, dateField},
					Ref:    ref,
				}),
			})
		}
		if len(row) == slotsPerRow {
			rows = append(rows, row)
			row = make([]telego.InlineKeyboardButton, 0, slotsPerRow)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, []telego.InlineKeyboardButton{{
		Text: "« Back",
		CallbackData: dataOrInert(token.Token{
			Prefix: token.PrefixTime,
			Fields: []string{dateField, BackField},
			Ref:    ref,
		}),
	}})

	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// SelectedTime extracts the chosen instant from a time token, if it is a
// terminal selection rather than a back action.
func SelectedTime(t token.Token) (time.Time, bool) {
	if t.Prefix != token.PrefixTime || t.Field(1) == BackField {
		return time.Time{}, false
	}
	var h, m int
	if n, _ := fmt.Sscanf(t.Field(0), "%d:%d", &h, &m); n < 2 {
		return time.Time{}, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, false
	}
	date, err := ParseDate(t.Field(1))
	if err != nil {
		return time.Time{}, false
	}
	return date.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), true
}

// BackDate extracts the date from a back token, used to reopen the calendar
// at the month containing it.
func BackDate(t token.Token) (time.Time, bool) {
	if t.Prefix != token.PrefixTime || t.Field(1) != BackField {
		return time.Time{}, false
	}
	date, err := ParseDate(t.Field(0))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
