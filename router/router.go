package router

import (
	"log"

	"spellbee/config"
	"spellbee/controllers"
	"spellbee/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: the public Telegram webhook
// plus the token-protected dashboard API.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Webhook (Telegram) - validado pelo secret_token do setWebhook,
	// não pelo token do dashboard.
	api.POST("/telegram/webhook", controllers.TelegramWebhook)

	// Dashboard routes (token required)
	dash := api.Group("")
	dash.Use(Authorizer(cfg.Dashboard.Token))

	// Reminders
	dash.GET("/reminders", Logger(), controllers.GetReminders)
	dash.POST("/reminders", Logger(), controllers.CreateReminder)
	dash.POST("/reminders/dispatch", Logger(), controllers.DispatchReminders)

	// Parents
	dash.GET("/parents", Logger(), controllers.GetParents)
	dash.GET("/parents/:id", Logger(), controllers.GetParentByID)

	// Leads
	dash.GET("/leads", Logger(), controllers.GetLeads)
	dash.PUT("/leads/:id", Logger(), controllers.UpdateLead)

	log.Printf("Routes initialized")
}
