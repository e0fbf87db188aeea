package picker

import (
	"testing"
	"time"

	"spellbee/bot/token"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotButtons(kb *telego.InlineKeyboardMarkup) []telego.InlineKeyboardButton {
	var out []telego.InlineKeyboardButton
	for _, row := range kb.InlineKeyboard[1 : len(kb.InlineKeyboard)-1] {
		out = append(out, row...)
	}
	return out
}

func TestDefaultPeriod(t *testing.T) {
	now := localDate(2025, time.May, 15, 10, 0)

	assert.Equal(t, PERIOD_EVENING, DefaultPeriod(localDate(2025, time.May, 10, 0, 0), now))
	assert.Equal(t, PERIOD_MORNING, DefaultPeriod(localDate(2025, time.May, 20, 0, 0), now))

	today := localDate(2025, time.May, 15, 0, 0)
	assert.Equal(t, PERIOD_MORNING, DefaultPeriod(today, localDate(2025, time.May, 15, 11, 59)))
	assert.Equal(t, PERIOD_AFTERNOON, DefaultPeriod(today, localDate(2025, time.May, 15, 12, 0)))
	assert.Equal(t, PERIOD_AFTERNOON, DefaultPeriod(today, localDate(2025, time.May, 15, 15, 59)))
	assert.Equal(t, PERIOD_EVENING, DefaultPeriod(today, localDate(2025, time.May, 15, 16, 0)))
	assert.Equal(t, PERIOD_EVENING, DefaultPeriod(today, localDate(2025, time.May, 15, 23, 0)))
}

func TestPeriodKeyboardLayout(t *testing.T) {
	now := localDate(2025, time.May, 15, 10, 0)
	date := localDate(2025, time.May, 20, 0, 0)
	kb := PeriodKeyboard(date, PERIOD_MORNING, now, "42")

	selector := kb.InlineKeyboard[0]
	require.Len(t, selector, 3)
	assert.Equal(t, "• Morning", selector[0].Text)
	assert.Equal(t, "pt_morning_2025-5-20|42", selector[0].CallbackData)
	assert.Equal(t, "pt_evening_2025-5-20|42", selector[2].CallbackData)

	slots := slotButtons(kb)
	require.Len(t, slots, 4)
	assert.Equal(t, "08:00", slots[0].Text)
	assert.Equal(t, "t_08:00_2025-5-20|42", slots[0].CallbackData)

	back := kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
	require.Len(t, back, 1)
	assert.Equal(t, "t_2025-5-20_back|42", back[0].CallbackData)
}

func TestPeriodKeyboardPastSlotsAreInert(t *testing.T) {
	// Today at 13:30: 12:00 and 13:00 have passed, 14:00 and 15:00 remain.
	now := localDate(2025, time.May, 15, 13, 30)
	date := localDate(2025, time.May, 15, 0, 0)
	kb := PeriodKeyboard(date, PERIOD_AFTERNOON, now, "")

	slots := slotButtons(kb)
	require.Len(t, slots, 4)
	assert.True(t, IsInert(slots[0]))
	assert.True(t, IsInert(slots[1]))
	assert.False(t, IsInert(slots[2]))
	assert.False(t, IsInert(slots[3]))
}

func TestPeriodKeyboardExactHourIsInert(t *testing.T) {
	// A slot equal to now is not strictly in the future.
	now := localDate(2025, time.May, 15, 14, 0)
	kb := PeriodKeyboard(localDate(2025, time.May, 15, 0, 0), PERIOD_AFTERNOON, now, "")

	for _, b := range slotButtons(kb) {
		if b.Text == "14:00" {
			t.Fatal("14:00 should render inert when now is exactly 14:00")
		}
	}
}

func TestPeriodKeyboardPastDateAllInert(t *testing.T) {
	now := localDate(2025, time.May, 15, 10, 0)
	date := localDate(2025, time.May, 10, 0, 0)

	for _, period := range []string{PERIOD_MORNING, PERIOD_AFTERNOON, PERIOD_EVENING} {
		kb := PeriodKeyboard(date, period, now, "")
		for _, b := range slotButtons(kb) {
			assert.True(t, IsInert(b), "period %s slot %q", period, b.Text)
		}
	}
}

func TestPeriodKeyboardUnknownPeriodFallsBack(t *testing.T) {
	now := localDate(2025, time.May, 15, 10, 0)
	kb := PeriodKeyboard(localDate(2025, time.May, 20, 0, 0), "brunch", now, "")

	// Future date falls back to morning.
	assert.Equal(t, "• Morning", kb.InlineKeyboard[0][0].Text)
}

func TestSelectedTime(t *testing.T) {
	at, ok := SelectedTime(token.Decode("t_14:00_2025-5-12|7"))
	require.True(t, ok)
	assert.Equal(t, localDate(2025, time.May, 12, 14, 0), at)

	_, ok = SelectedTime(token.Decode("t_2025-5-12_back"))
	assert.False(t, ok)
	_, ok = SelectedTime(token.Decode("t_25:99_2025-5-12"))
	assert.False(t, ok)
	_, ok = SelectedTime(token.Decode("pt_morning_2025-5-12"))
	assert.False(t, ok)
}

func TestBackDate(t *testing.T) {
	date, ok := BackDate(token.Decode("t_2025-5-12_back|7"))
	require.True(t, ok)
	assert.Equal(t, localDate(2025, time.May, 12, 0, 0), date)

	_, ok = BackDate(token.Decode("t_14:00_2025-5-12"))
	assert.False(t, ok)
}
