package common

import (
	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/infrastructure/telegram"
	"github.com/luxe-studio/luxe-site/internal/metrics"
	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
)

// RecordRelayResult logs the result of one relay attempt and counts it under channel.
// Telegram rejections and transport failures look the same to visitors, so the
// distinction only exists here.
func RecordRelayResult(logger *zap.Logger, channel string, outcome publicapp.RelayOutcome, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err != nil {
		if apiErr, ok := telegram.IsAPIError(err); ok {
			logger.Error("telegram api error",
				zap.String("channel", channel),
				zap.Int("status", apiErr.StatusCode),
				zap.Int("error_code", apiErr.ErrorCode),
				zap.String("description", apiErr.Description),
				zap.String("body", apiErr.Body),
			)
			metrics.RecordSubmission(channel, metrics.OutcomeRejected)
			return
		}
		logger.Error("contact relay failed", zap.String("channel", channel), zap.Error(err))
		metrics.RecordSubmission(channel, metrics.OutcomeFailed)
		return
	}

	switch outcome {
	case publicapp.OutcomeSkipped:
		logger.Warn("telegram configuration missing, message not sent", zap.String("channel", channel))
		metrics.RecordSubmission(channel, metrics.OutcomeSkipped)
	default:
		logger.Info("contact submission relayed", zap.String("channel", channel))
		metrics.RecordSubmission(channel, metrics.OutcomeDelivered)
	}
}
