// Package picker renders the calendar and time-of-day keyboards of the
// follow-up scheduling flow. Every keyboard is a pure function of the
// incoming token and "now": no session state survives between webhook
// calls, the token alone is enough to resume the flow on any worker.
package picker

import (
	"fmt"
	"time"

	"spellbee/bot/token"

	"github.com/mymmrac/telego"
)

// Inert controls keep their grid cell so the keyboard geometry stays
// stable, but match no handler. Telegram rejects empty button text and
// callback data, hence the single space.
const (
	InertLabel = " "
	InertData  = " "
)

func inertButton() telego.InlineKeyboardButton {
	return telego.InlineKeyboardButton{Text: InertLabel, CallbackData: InertData}
}

// IsInert reports whether a button is a placeholder cell.
func IsInert(b telego.InlineKeyboardButton) bool {
	return b.CallbackData == InertData
}

// dataOrInert encodes t, degrading to an inert cell when the token would
// not fit the callback-data limit (an oversized contextual reference).
func dataOrInert(t token.Token) string {
	raw, err := token.Encode(t)
	if err != nil {
		return InertData
	}
	return raw
}

// FormatDate renders a date as "YYYY-M-D" (no zero padding), the field
// format used inside workflow tokens.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a "YYYY-M-D" token field in the operating timezone.
func ParseDate(s string) (time.Time, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); err != nil {
		return time.Time{}, fmt.Errorf("bad date field %q: %w", s, err)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("bad date field %q", s)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

// FormatMonth renders "YYYY-M", the field format of navigation tokens.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%d-%d", year, int(month))
}

// ParseMonth parses a "YYYY-M" token field. Trailing fields (a day from a
// stale date token) are ignored.
func ParseMonth(s string) (int, time.Month, error) {
	var y, m int
	if n, err := fmt.Sscanf(s, "%d-%d", &y, &m); n < 2 {
		return 0, 0, fmt.Errorf("bad month field %q: %v", s, err)
	}
	if m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("bad month field %q", s)
	}
	return y, time.Month(m), nil
}

// midnight normalizes t to 00:00 in its own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
