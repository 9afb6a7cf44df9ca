package domain

// EventKind is the subset of LINE webhook events the bot reacts to.
type EventKind string

const (
	EventText    EventKind = "text"
	EventFollow  EventKind = "follow"
	EventIgnored EventKind = "ignored"
)

// InboundEvent is a webhook event stripped of transport details.
type InboundEvent struct {
	Kind       EventKind
	UserID     string
	ReplyToken string
	Text       string
}
