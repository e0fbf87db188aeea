package controllers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"spellbee/bot"
	"spellbee/tools"

	"github.com/gin-gonic/gin"
	"github.com/mymmrac/telego"
)

var (
	botRouter     *bot.Router
	telegram      *tools.TelegramClient
	webhookSecret string
)

// SetupBot injeta o router de comandos e o client do Telegram no controller.
func SetupBot(router *bot.Router, client *tools.TelegramClient, secret string) {
	botRouter = router
	telegram = client
	webhookSecret = secret
}

// TelegramWebhook recebe updates do Telegram (setWebhook com secret_token).
// Responde 200 o mais rápido possível; o processamento roda em background.
func TelegramWebhook(c *gin.Context) {
	if webhookSecret != "" {
		got := c.GetHeader("X-Telegram-Bot-Api-Secret-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(webhookSecret)) != 1 {
			RespondError(c, "forbidden", http.StatusForbidden)
			return
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, "invalid body", http.StatusBadRequest)
		return
	}

	var update telego.Update
	if err := json.Unmarshal(body, &update); err != nil {
		// Telegram reenvia updates que não foram respondidos com 200,
		// então payload quebrado é descartado com 200 mesmo.
		log.Printf("webhook: discarding malformed update: %v", err)
		c.Status(http.StatusOK)
		return
	}

	if botRouter == nil {
		RespondError(c, "bot not configured", http.StatusServiceUnavailable)
		return
	}

	go func() {
		ctx := context.Background()
		if update.CallbackQuery != nil && telegram != nil {
			// Acusa o recebimento pra parar o spinner do botão.
			if err := telegram.AnswerCallback(ctx, update.CallbackQuery.ID); err != nil {
				log.Printf("webhook: answer callback: %v", err)
			}
		}
		botRouter.Route(ctx, update)
	}()

	c.Status(http.StatusOK)
}
