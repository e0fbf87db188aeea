package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	matches bool
	auth    bool
	handled int
	fail    error
	panics  bool
}

func (s *stubHandler) CanHandle(telego.Update) bool     { return s.matches }
func (s *stubHandler) AuthRequired(telego.Update) bool  { return s.auth }
func (s *stubHandler) Handle(context.Context, telego.Update) error {
	s.handled++
	if s.panics {
		panic("boom")
	}
	return s.fail
}

func textUpdate(fromID int64, text string) telego.Update {
	return telego.Update{Message: &telego.Message{
		From: &telego.User{ID: fromID},
		Chat: telego.Chat{ID: fromID},
		Text: text,
	}}
}

func TestRouterFirstMatchWins(t *testing.T) {
	a := &stubHandler{matches: true}
	b := &stubHandler{matches: true}
	c := &stubHandler{matches: false}

	r := NewRouter(nil, a, b, c)
	r.Route(context.Background(), textUpdate(1, "hi"))

	assert.Equal(t, 1, a.handled)
	assert.Equal(t, 0, b.handled)
	assert.Equal(t, 0, c.handled)
}

func TestRouterNoMatchIsSilent(t *testing.T) {
	a := &stubHandler{matches: false}
	r := NewRouter(nil, a)

	assert.NotPanics(t, func() {
		r.Route(context.Background(), textUpdate(1, "hi"))
	})
	assert.Equal(t, 0, a.handled)
}

func TestRouterUnrecognizedUpdateNeverRouted(t *testing.T) {
	a := &stubHandler{matches: true}
	r := NewRouter(nil, a)

	r.Route(context.Background(), telego.Update{UpdateID: 7})
	assert.Equal(t, 0, a.handled)
}

func TestRouterAuthGate(t *testing.T) {
	gated := &stubHandler{matches: true, auth: true}
	admins := map[int64]bool{42: true}
	r := NewRouter(func(id int64) bool { return admins[id] }, gated)

	r.Route(context.Background(), textUpdate(1, "hi"))
	assert.Equal(t, 0, gated.handled, "non-admin must be rejected before Handle")

	r.Route(context.Background(), textUpdate(42, "hi"))
	assert.Equal(t, 1, gated.handled)
}

func TestRouterAuthGateDoesNotFallThrough(t *testing.T) {
	gated := &stubHandler{matches: true, auth: true}
	open := &stubHandler{matches: true}
	r := NewRouter(func(int64) bool { return false }, gated, open)

	r.Route(context.Background(), textUpdate(1, "hi"))
	assert.Equal(t, 0, gated.handled)
	assert.Equal(t, 0, open.handled, "rejection must not fall through to later handlers")
}

func TestRouterOpenHandlerSkipsAuth(t *testing.T) {
	open := &stubHandler{matches: true, auth: false}
	r := NewRouter(func(int64) bool { return false }, open)

	r.Route(context.Background(), textUpdate(1, "hi"))
	assert.Equal(t, 1, open.handled)
}

func TestRouterContainsFailures(t *testing.T) {
	failing := &stubHandler{matches: true, fail: errors.New("db down")}
	panicking := &stubHandler{matches: true, panics: true}

	assert.NotPanics(t, func() {
		NewRouter(nil, failing).Route(context.Background(), textUpdate(1, "hi"))
		NewRouter(nil, panicking).Route(context.Background(), textUpdate(1, "hi"))
	})
	assert.Equal(t, 1, failing.handled)
	assert.Equal(t, 1, panicking.handled)
}

func TestRecognized(t *testing.T) {
	assert.False(t, Recognized(telego.Update{}))
	assert.True(t, Recognized(textUpdate(1, "hi")))
	assert.True(t, Recognized(telego.Update{CallbackQuery: &telego.CallbackQuery{}}))
	assert.True(t, Recognized(telego.Update{Poll: &telego.Poll{}}))
	assert.True(t, Recognized(telego.Update{PollAnswer: &telego.PollAnswer{}}))
}

func TestFromID(t *testing.T) {
	require.Equal(t, int64(9), FromID(textUpdate(9, "hi")))

	u := telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: 11}}}
	assert.Equal(t, int64(11), FromID(u))

	// A poll has no originator.
	assert.Equal(t, int64(0), FromID(telego.Update{Poll: &telego.Poll{}}))

	// Message without a sender (e.g. channel post shapes) resolves to 0 too.
	assert.Equal(t, int64(0), FromID(telego.Update{Message: &telego.Message{}}))
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "/search", commandName("/search maria"))
	assert.Equal(t, "/report", commandName("/report"))
	assert.Equal(t, "", commandName("hello /search"))
	assert.Equal(t, "", commandName(""))
}
