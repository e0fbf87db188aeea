package controllers

import (
	"net/http"

	dbpkg "spellbee/db"
	"spellbee/models"
	"spellbee/tools"
	"spellbee/workers"

	"github.com/gin-gonic/gin"
)

type ScheduleReminderRequest struct {
	UserID   string `json:"userId" form:"userId"`
	Message  string `json:"message" form:"message"`
	DateTime string `json:"dateTime" form:"dateTime"`
}

// POST /api/reminders
func CreateReminder(c *gin.Context) {
	var body ScheduleReminderRequest
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if !tools.ValidateRecipientID(body.UserID) {
		RespondError(c, "userId inválido", http.StatusBadRequest)
		return
	}
	if reason := tools.CheckReminderMessage(body.Message); reason != "" {
		RespondError(c, reason, http.StatusBadRequest)
		return
	}
	at, err := tools.ParseScheduleTime(body.DateTime)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	reminder := models.Reminder{
		RecipientID: body.UserID,
		Message:     body.Message,
		ScheduledAt: at,
		IsActive:    true,
		MaxAttempts: models.REMINDER_MAX_ATTEMPTS_DEFAULT,
	}
	if err := db.Create(&reminder).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"reminder": reminder})
}

// GET /api/reminders
func GetReminders(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var reminders []models.Reminder
	if err := db.Order("scheduled_at asc, id asc").Find(&reminders).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"reminders": reminders})
}

// POST /api/reminders/dispatch
// Dispara um ciclo de envio fora do agendamento do worker.
func DispatchReminders(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}
	if telegram == nil {
		RespondError(c, "bot not configured", http.StatusServiceUnavailable)
		return
	}

	go workers.RunDispatchCycle(db, telegram)

	RespondSuccess(c, gin.H{"status": "dispatch started"})
}
