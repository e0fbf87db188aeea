package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" ou "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Telegram struct {
		BotToken         string `json:"bot_token"`
		WebhookSecret    string `json:"webhook_secret"`
		BootstrapCode    string `json:"bootstrap_code"`
		WelcomeStickerID string `json:"welcome_sticker_id"`
		GameURL          string `json:"game_url"`
	} `json:"telegram"`

	Dashboard struct {
		Token string `json:"token"`
	} `json:"dashboard"`

	Dispatcher struct {
		IntervalMinutes int `json:"interval_minutes"`
	} `json:"dispatcher"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}

	// defaults (pra evitar nil/zero chato)
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Telegram.GameURL == "" {
		c.Telegram.GameURL = "https://game.spellbee.app/play"
	}
	if c.Telegram.BootstrapCode == "" {
		c.Telegram.BootstrapCode = "CHANGE_ME"
	}
	if c.Dispatcher.IntervalMinutes <= 0 {
		c.Dispatcher.IntervalMinutes = 60
	}

	return c
}
