// Package webhook receives LINE webhook deliveries.
package webhook

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-line-bot/internal/domain"
	"github.com/heartmarshall/vocab-line-bot/pkg/ctxutil"
)

type eventParser interface {
	ParseEvents(r *http.Request) ([]domain.InboundEvent, error)
}

type replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

type registrar interface {
	Register(ctx context.Context) (*domain.Learner, error)
}

type bot interface {
	HandleText(ctx context.Context, text string) string
	HandleFollow(ctx context.Context) string
}

// Handler verifies a delivery, runs every event through the bot and replies.
type Handler struct {
	parser   eventParser
	replier  replier
	learners registrar
	bot      bot
	log      *slog.Logger
}

// NewHandler creates a webhook Handler.
func NewHandler(parser eventParser, replier replier, learners registrar, bot bot, log *slog.Logger) *Handler {
	return &Handler{
		parser:   parser,
		replier:  replier,
		learners: learners,
		bot:      bot,
		log:      log.With("handler", "webhook"),
	}
}

// ServeHTTP answers 400 for a bad signature or body and 200 otherwise.
// Failures inside one event are reported to the user, never to LINE, which
// would redeliver the whole batch.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	events, err := h.parser.ParseEvents(r)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.log.WarnContext(r.Context(), "rejected webhook", slog.String("error", err.Error()))
			http.Error(w, "invalid signature", http.StatusBadRequest)
			return
		}
		h.log.WarnContext(r.Context(), "malformed webhook", slog.String("error", err.Error()))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	for _, ev := range events {
		h.handleEvent(r.Context(), ev)
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) handleEvent(ctx context.Context, ev domain.InboundEvent) {
	if ev.Kind == domain.EventIgnored || ev.UserID == "" {
		return
	}
	ctx = ctxutil.WithUserID(ctx, ev.UserID)
	log := h.log.With(slog.String("user_id", ev.UserID), slog.String("event", string(ev.Kind)))

	if _, err := h.learners.Register(ctx); err != nil {
		log.ErrorContext(ctx, "register learner", slog.String("error", err.Error()))
	}

	var reply string
	switch ev.Kind {
	case domain.EventFollow:
		reply = h.bot.HandleFollow(ctx)
	case domain.EventText:
		reply = h.bot.HandleText(ctx, ev.Text)
	}
	if reply == "" || ev.ReplyToken == "" {
		return
	}

	if err := h.replier.Reply(ctx, ev.ReplyToken, reply); err != nil {
		log.WarnContext(ctx, "reply failed", slog.String("error", err.Error()))
	}
}
