package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spellbee/bot"
	dbpkg "spellbee/db"
	"spellbee/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.AutoMigrate(
		&models.Admin{}, &models.Parent{}, &models.Lead{}, &models.Reminder{},
	).Error)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	return r, database
}

func TestTelegramWebhookRejectsBadSecret(t *testing.T) {
	r, _ := testEngine(t)
	SetupBot(bot.NewRouter(nil), nil, "hunter2")
	t.Cleanup(func() { SetupBot(nil, nil, "") })

	r.POST("/api/telegram/webhook", TelegramWebhook)

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(`{}`))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "wrong")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTelegramWebhookAcksMalformedPayload(t *testing.T) {
	r, _ := testEngine(t)
	SetupBot(bot.NewRouter(nil), nil, "hunter2")
	t.Cleanup(func() { SetupBot(nil, nil, "") })

	r.POST("/api/telegram/webhook", TelegramWebhook)

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(`{not json`))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "hunter2")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Telegram retries anything that is not a 200, so garbage is
	// acknowledged and dropped.
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTelegramWebhookWithoutRouterIsUnavailable(t *testing.T) {
	r, _ := testEngine(t)
	SetupBot(nil, nil, "")

	r.POST("/api/telegram/webhook", TelegramWebhook)

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook", strings.NewReader(`{"update_id":1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateReminderValidation(t *testing.T) {
	r, database := testEngine(t)
	r.POST("/api/reminders", CreateReminder)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/reminders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	cases := []struct {
		name string
		body string
	}{
		{"bad recipient", `{"userId":"abc","message":"call the parents","dateTime":"2026-09-01T10:00:00Z"}`},
		{"short message", `{"userId":"42","message":"hey","dateTime":"2026-09-01T10:00:00Z"}`},
		{"bad datetime", `{"userId":"42","message":"call the parents","dateTime":"tomorrow"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(tc.body).Code)
		})
	}

	w := post(`{"userId":"42","message":"call the parents back","dateTime":"2026-09-01T10:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Reminder
	require.NoError(t, database.First(&stored).Error)
	assert.Equal(t, "42", stored.RecipientID)
	assert.True(t, stored.IsActive)
	assert.Equal(t, models.REMINDER_MAX_ATTEMPTS_DEFAULT, stored.MaxAttempts)
	assert.False(t, stored.IsAttended)
}

func TestUpdateLeadStatus(t *testing.T) {
	r, database := testEngine(t)
	r.PUT("/api/leads/:id", UpdateLead)

	lead := models.Lead{ParentID: 7, Status: models.LEAD_STATUS_NEW}
	require.NoError(t, database.Create(&lead).Error)

	req := httptest.NewRequest(http.MethodPut, "/api/leads/1", strings.NewReader(`{"status":"won"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Lead
	require.NoError(t, database.First(&stored, lead.ID).Error)
	assert.Equal(t, models.LEAD_STATUS_WON, stored.Status)

	req = httptest.NewRequest(http.MethodPut, "/api/leads/1", strings.NewReader(`{"status":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
