package main

import (
	"log"
	"os"
	"time"

	"spellbee/bot"
	"spellbee/config"
	"spellbee/controllers"
	"spellbee/db"
	"spellbee/models"
	"spellbee/router"
	"spellbee/tools"
	"spellbee/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Get(configPath)

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer database.Close()

	telegram, err := tools.NewTelegramClient(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatalf("Error creating telegram client: %v", err)
	}

	isAdmin := func(chatID int64) bool {
		var count int
		database.Model(&models.Admin{}).Where("chat_id = ?", chatID).Count(&count)
		return count > 0
	}

	// A ordem de registro é a prioridade de match; o intake de pais fica
	// por último como catch-all de texto livre.
	botRouter := bot.NewRouter(isAdmin,
		&bot.AddAdminHandler{DB: database, Sender: telegram, BootstrapCode: cfg.Telegram.BootstrapCode},
		&bot.AttachCodeHandler{DB: database, Sender: telegram},
		&bot.SearchHandler{DB: database, Sender: telegram},
		&bot.ReportHandler{DB: database, Sender: telegram},
		&bot.ScheduleHandler{DB: database, Sender: telegram},
		&bot.CalendarHandler{Sender: telegram},
		&bot.TimePickerHandler{DB: database, Sender: telegram},
		&bot.LeadStatusHandler{DB: database, Sender: telegram},
		&bot.ParentIntakeHandler{
			DB:               database,
			Sender:           telegram,
			GameURL:          cfg.Telegram.GameURL,
			WelcomeStickerID: cfg.Telegram.WelcomeStickerID,
		},
	)

	controllers.SetupBot(botRouter, telegram, cfg.Telegram.WebhookSecret)

	workers.StartReminderDispatcher(database, telegram,
		time.Duration(cfg.Dispatcher.IntervalMinutes)*time.Minute)

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Spellbee listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
