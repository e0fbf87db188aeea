package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
)

// TelegramClient wraps the Bot API client behind the narrow sender
// capability the bot router and the reminders worker depend on.
type TelegramClient struct {
	bot *telego.Bot
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	b, err := telego.NewBot(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("initialize telegram bot: %w", err)
	}
	return &TelegramClient{bot: b}, nil
}

func (t *TelegramClient) Send(ctx context.Context, chatID int64, text string, markup telego.ReplyMarkup) error {
	params := &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: chatID},
		Text:        text,
		ReplyMarkup: markup,
	}
	if _, err := t.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("telegram send to %d: %w", chatID, err)
	}
	return nil
}

func (t *TelegramClient) SendSticker(ctx context.Context, chatID int64, fileID string) error {
	params := &telego.SendStickerParams{
		ChatID:  telego.ChatID{ID: chatID},
		Sticker: telego.InputFile{FileID: fileID},
	}
	if _, err := t.bot.SendSticker(ctx, params); err != nil {
		return fmt.Errorf("telegram sticker to %d: %w", chatID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query so the client stops showing
// the loading state. The webhook controller calls it for every callback
// update, whichever handler ends up claiming it.
func (t *TelegramClient) AnswerCallback(ctx context.Context, callbackQueryID string) error {
	return t.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: callbackQueryID,
	})
}

// GameDeepLink builds the parent-facing game URL carrying the parent id,
// so the game UI can greet the family and report back which lead converted.
func GameDeepLink(baseURL string, parentID int64) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Set("parent", strconv.FormatInt(parentID, 10))
	u.RawQuery = q.Encode()
	return u.String()
}
