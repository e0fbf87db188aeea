package picker

import (
	"strconv"
	"time"

	"spellbee/bot/token"

	"github.com/mymmrac/telego"
)

// Navigation actions carried in the last field of a calendar token.
const (
	NavForward  = "++"
	NavBack     = "--"
	daySelected = "0"
)

var weekHeader = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// MonthKeyboard renders the month grid: one week-header row, up to six week
// rows of day cells and a navigation row. Days strictly before today (local
// midnight of now) render inert so the grid geometry never shifts while the
// past stays unclickable. ref, when present, is propagated onto every
// actionable control so later screens keep the contextual reference.
func MonthKeyboard(year int, month time.Month, now time.Time, ref string) *telego.InlineKeyboardMarkup {
	today := midnight(now)
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	rows := make([][]telego.InlineKeyboardButton, 0, 8)

	header := make([]telego.InlineKeyboardButton, 7)
	for i, wd := range weekHeader {
		header[i] = telego.InlineKeyboardButton{Text: wd, CallbackData: InertData}
	}
	rows = append(rows, header)

	// Monday-first offset of the month's first day.
	lead := (int(first.Weekday()) + 6) % 7

	week := make([]telego.InlineKeyboardButton, 0, 7)
	for i := 0; i < lead; i++ {
		week = append(week, inertButton())
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
		if date.Before(today) {
			week = append(week, inertButton())
		} else {
			week = append(week, telego.InlineKeyboardButton{
				Text: strconv.Itoa(day),
				CallbackData: dataOrInert(token.Token{
					Prefix: token.PrefixCalendar,
					Fields: []string{FormatDate(date), daySelected},
					Ref:    ref,
				}),
			})
		}
		if len(week) == 7 {
			rows = append(rows, week)
			week = make([]telego.InlineKeyboardButton, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, inertButton())
		}
		rows = append(rows, week)
	}

	rows = append(rows, navRow(year, month, ref))

	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// navRow carries the rendered month in both navigation tokens; the action
// field says which adjacent month to move to.
func navRow(year int, month time.Month, ref string) []telego.InlineKeyboardButton {
	return []telego.InlineKeyboardButton{
		{
			Text: "«",
			CallbackData: dataOrInert(token.Token{
				Prefix: token.PrefixCalendar,
				Fields: []string{FormatMonth(year, month), NavBack},
				Ref:    ref,
			}),
		},
		{Text: month.String() + " " + strconv.Itoa(year), CallbackData: InertData},
		{
			Text: "»",
			CallbackData: dataOrInert(token.Token{
				Prefix: token.PrefixCalendar,
				Fields: []string{FormatMonth(year, month), NavForward},
				Ref:    ref,
			}),
		},
	}
}

// shiftMonth moves a (year, month) pair by delta months, normalizing across
// year boundaries.
func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	m := int(month) - 1 + delta
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}

// SelectedDate extracts the chosen date from a calendar token ending in the
// date-selected action, if any.
func SelectedDate(t token.Token) (time.Time, bool) {
	if t.Prefix != token.PrefixCalendar || t.Field(1) != daySelected {
		return time.Time{}, false
	}
	date, err := ParseDate(t.Field(0))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// NavTarget reports whether a calendar token is a month navigation and,
// when it is, the adjacent month it moves to.
func NavTarget(t token.Token) (int, time.Month, bool) {
	if t.Prefix != token.PrefixCalendar {
		return 0, 0, false
	}
	delta := 0
	switch t.Field(1) {
	case NavForward:
		delta = 1
	case NavBack:
		delta = -1
	default:
		return 0, 0, false
	}
	year, month, err := ParseMonth(t.Field(0))
	if err != nil {
		return 0, 0, false
	}
	year, month = shiftMonth(year, month, delta)
	return year, month, true
}
