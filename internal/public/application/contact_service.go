package application

import (
	"context"
	"fmt"

	"github.com/luxe-studio/luxe-site/internal/public/domain"
)

// contactRelayService is the concrete implementation of ContactRelayService.
type contactRelayService struct {
	cfg      RelayConfig
	notifier Notifier
}

// NewContactRelayService creates a relay service. notifier may be nil when cfg is not configured.
func NewContactRelayService(cfg RelayConfig, notifier Notifier) ContactRelayService {
	return &contactRelayService{cfg: cfg, notifier: notifier}
}

// Relay sends exactly one notification per call; there is no retry and no deduplication.
func (s *contactRelayService) Relay(ctx context.Context, submission domain.ContactSubmission) (RelayOutcome, error) {
	if !s.cfg.Configured() || s.notifier == nil {
		return OutcomeSkipped, nil
	}

	text := submission.Normalized().NotificationText()
	if err := s.notifier.SendText(ctx, text); err != nil {
		return OutcomeFailed, fmt.Errorf("%w: %w", ErrRelayFailed, err)
	}
	return OutcomeDelivered, nil
}
