package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecipientID(t *testing.T) {
	assert.True(t, ValidateRecipientID("123"))
	assert.True(t, ValidateRecipientID(" 42 "))
	assert.False(t, ValidateRecipientID("0"))
	assert.False(t, ValidateRecipientID("-5"))
	assert.False(t, ValidateRecipientID("12a"))
	assert.False(t, ValidateRecipientID(""))
	assert.False(t, ValidateRecipientID("007"))
}

func TestCheckReminderMessage(t *testing.T) {
	assert.Equal(t, "", CheckReminderMessage("Call back"))
	assert.NotEqual(t, "", CheckReminderMessage("hey"))
	assert.NotEqual(t, "", CheckReminderMessage("  ab  "))
	assert.Equal(t, "", CheckReminderMessage(strings.Repeat("x", 500)))
	assert.NotEqual(t, "", CheckReminderMessage(strings.Repeat("x", 501)))
}

func TestParseScheduleTime(t *testing.T) {
	// Past instants parse fine; only the format is validated.
	at, err := ParseScheduleTime("2025-01-01T10:00:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, 2025, at.Year())
	_, offset := at.Zone()
	assert.Equal(t, 5*3600+30*60, offset)

	_, err = ParseScheduleTime("tomorrow at noon")
	assert.Error(t, err)
	_, err = ParseScheduleTime("2025-01-01")
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5511999887766", NormalizePhone("+55 (11) 99988-7766"))
	assert.Equal(t, "", NormalizePhone("call me"))
	assert.Equal(t, "301", NormalizePhone("0301"))
}

func TestRandomString(t *testing.T) {
	code := RandomString(8)
	assert.Len(t, code, 8)
	assert.NotContains(t, code, "0")
	assert.NotContains(t, code, "O")
}

func TestGameDeepLink(t *testing.T) {
	link := GameDeepLink("https://game.spellbee.app/play", 42)
	assert.Equal(t, "https://game.spellbee.app/play?parent=42", link)

	// Existing query parameters survive.
	link = GameDeepLink("https://game.spellbee.app/play?lang=pt", 42)
	assert.Contains(t, link, "lang=pt")
	assert.Contains(t, link, "parent=42")
}
