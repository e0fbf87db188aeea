// Package bot routes inbound Telegram updates to the first capable handler
// and hosts the handlers themselves. Handlers are stateless: everything a
// multi-step flow needs travels inside the callback token.
package bot

import (
	"context"
	"log"

	"github.com/mymmrac/telego"
)

// Sender is the narrow outbound capability handlers and workers depend on.
// The concrete Telegram client lives in tools; tests inject doubles.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string, markup telego.ReplyMarkup) error
	SendSticker(ctx context.Context, chatID int64, fileID string) error
}

// Handler processes one class of inbound update.
type Handler interface {
	// CanHandle reports whether this handler claims the update. The router
	// asks in registration order and stops at the first yes.
	CanHandle(update telego.Update) bool
	// AuthRequired reports whether Handle may only run for a registered
	// admin. It is consulted after CanHandle, so bootstrap handlers can
	// opt out of the check entirely.
	AuthRequired(update telego.Update) bool
	Handle(ctx context.Context, update telego.Update) error
}

// AdminChecker reports whether a chat id belongs to a registered admin.
type AdminChecker func(chatID int64) bool

// Router dispatches each update to exactly one handler. Registration order
// is the match priority and is part of the contract.
type Router struct {
	handlers []Handler
	isAdmin  AdminChecker
}

func NewRouter(isAdmin AdminChecker, handlers ...Handler) *Router {
	return &Router{handlers: handlers, isAdmin: isAdmin}
}

// Route runs the first handler that claims the update. Updates nobody
// claims are dropped silently. Handler failures are contained here: they
// are logged and never propagate to the webhook, and the router never
// falls through to a second handler.
func (r *Router) Route(ctx context.Context, update telego.Update) {
	if !Recognized(update) {
		return
	}

	for _, h := range r.handlers {
		if !h.CanHandle(update) {
			continue
		}
		if h.AuthRequired(update) && !r.authorized(update) {
			log.Printf("bot router: dropping unauthorized update %d from %d", update.UpdateID, FromID(update))
			return
		}
		r.run(ctx, h, update)
		return
	}
}

func (r *Router) authorized(update telego.Update) bool {
	id := FromID(update)
	return id != 0 && r.isAdmin != nil && r.isAdmin(id)
}

func (r *Router) run(ctx context.Context, h Handler, update telego.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("bot router: handler panic on update %d: %v", update.UpdateID, rec)
		}
	}()

	if err := h.Handle(ctx, update); err != nil {
		log.Printf("bot router: handler error on update %d: %v", update.UpdateID, err)
	}
}
