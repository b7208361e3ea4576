package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/luxe-studio/luxe-site/internal/infrastructure/telegram"
	"github.com/luxe-studio/luxe-site/internal/metrics"
	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
)

func TestRecordRelayResult(t *testing.T) {
	tests := []struct {
		name    string
		outcome publicapp.RelayOutcome
		err     error
		metric  string
		message string
		level   zapcore.Level
	}{
		{"delivered", publicapp.OutcomeDelivered, nil, metrics.OutcomeDelivered, "contact submission relayed", zapcore.InfoLevel},
		{"skipped", publicapp.OutcomeSkipped, nil, metrics.OutcomeSkipped, "telegram configuration missing, message not sent", zapcore.WarnLevel},
		{
			"rejected",
			publicapp.OutcomeFailed,
			fmt.Errorf("%w: %w", publicapp.ErrRelayFailed, &telegram.APIError{StatusCode: 400, Description: "chat not found"}),
			metrics.OutcomeRejected,
			"telegram api error",
			zapcore.ErrorLevel,
		},
		{"failed", publicapp.OutcomeFailed, errors.New("connection reset"), metrics.OutcomeFailed, "contact relay failed", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel := "test-" + tt.name
			core, logs := observer.New(zapcore.DebugLevel)

			RecordRelayResult(zap.New(core), channel, tt.outcome, tt.err)

			assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ContactSubmissions.WithLabelValues(channel, tt.metric)))
			entries := logs.FilterMessage(tt.message).All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.level, entries[0].Level)
				assert.Equal(t, channel, entries[0].ContextMap()["channel"])
			}
		})
	}
}

func TestRecordRelayResult_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordRelayResult(nil, "test-nil", publicapp.OutcomeDelivered, nil)
	})
}
