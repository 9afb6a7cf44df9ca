// Package line wraps the LINE Messaging API: webhook parsing with signature
// verification, reply messages and push messages.
package line

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/heartmarshall/vocab-line-bot/internal/config"
	"github.com/heartmarshall/vocab-line-bot/internal/domain"
)

// maxTextRunes is the LINE limit for a single text message.
const maxTextRunes = 5000

// Client sends and receives LINE messages for one channel.
type Client struct {
	bot *linebot.Client
	log *slog.Logger
}

// New creates a LINE client. httpClient may be nil to use the SDK default.
func New(cfg config.LINEConfig, httpClient *http.Client, log *slog.Logger) (*Client, error) {
	var opts []linebot.ClientOption
	if httpClient != nil {
		opts = append(opts, linebot.WithHTTPClient(httpClient))
	}
	if cfg.EndpointBase != "" {
		opts = append(opts, linebot.WithEndpointBase(cfg.EndpointBase))
	}

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("line: create client: %w", err)
	}

	return &Client{bot: bot, log: log.With("adapter", "line")}, nil
}

// ParseEvents verifies X-Line-Signature and converts the webhook body into
// domain events. A bad signature yields domain.ErrUnauthorized, an unreadable
// body domain.ErrValidation.
func (c *Client) ParseEvents(r *http.Request) ([]domain.InboundEvent, error) {
	events, err := c.bot.ParseRequest(r)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			return nil, fmt.Errorf("line: %w: %v", domain.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("line: parse webhook: %v: %w", err, domain.ErrValidation)
	}

	out := make([]domain.InboundEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toInbound(ev))
	}
	return out, nil
}

func toInbound(ev *linebot.Event) domain.InboundEvent {
	in := domain.InboundEvent{Kind: domain.EventIgnored, ReplyToken: ev.ReplyToken}
	if ev.Source != nil {
		in.UserID = ev.Source.UserID
	}

	switch ev.Type {
	case linebot.EventTypeFollow:
		in.Kind = domain.EventFollow
	case linebot.EventTypeMessage:
		if msg, ok := ev.Message.(*linebot.TextMessage); ok {
			in.Kind = domain.EventText
			in.Text = msg.Text
		}
	}
	return in
}

// Reply answers an inbound event. Reply tokens are single-use and expire quickly.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	_, err := c.bot.ReplyMessage(replyToken, linebot.NewTextMessage(truncate(text))).WithContext(ctx).Do()
	if err != nil {
		c.log.ErrorContext(ctx, "reply failed", slog.String("error", err.Error()))
		return fmt.Errorf("line: reply: %v: %w", err, domain.ErrMessagingUnavailable)
	}
	return nil
}

// Push sends an unsolicited message to a user.
func (c *Client) Push(ctx context.Context, userID, text string) error {
	_, err := c.bot.PushMessage(userID, linebot.NewTextMessage(truncate(text))).WithContext(ctx).Do()
	if err != nil {
		c.log.ErrorContext(ctx, "push failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		return fmt.Errorf("line: push to %s: %v: %w", userID, err, domain.ErrMessagingUnavailable)
	}
	return nil
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxTextRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxTextRunes-1]) + "…"
}
