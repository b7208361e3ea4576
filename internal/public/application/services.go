package application

import (
	"context"
	"errors"

	"github.com/luxe-studio/luxe-site/internal/public/domain"
)

// Notifier delivers a text message to the studio's configured chat.
// Notifier は問い合わせ内容を外部チャットへ送るためのポート。
type Notifier interface {
	SendText(ctx context.Context, text string) error
}

// RelayConfig carries the credentials that decide whether relaying is enabled.
type RelayConfig struct {
	BotToken string
	ChatID   string
}

// Configured reports whether both values are present.
func (c RelayConfig) Configured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// RelayOutcome describes what happened to a submission.
type RelayOutcome int

const (
	// OutcomeDelivered means the notifier accepted the message.
	OutcomeDelivered RelayOutcome = iota
	// OutcomeSkipped means relaying is not configured and nothing was sent.
	OutcomeSkipped
	// OutcomeFailed accompanies a non-nil error from Relay.
	OutcomeFailed
)

func (o RelayOutcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrRelayFailed wraps every notifier failure returned by ContactRelayService.
var ErrRelayFailed = errors.New("contact relay failed")

// ContactRelayService forwards contact submissions.
// ContactRelayService は問い合わせフォームの中継ユースケース。
type ContactRelayService interface {
	Relay(ctx context.Context, submission domain.ContactSubmission) (RelayOutcome, error)
}
