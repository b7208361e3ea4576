package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxe-studio/luxe-site/internal/public/domain"
)

type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (f *fakeNotifier) SendText(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return f.err
}

func (f *fakeNotifier) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.texts)
}

var configured = RelayConfig{BotToken: "123:abc", ChatID: "-100"}

func sample() domain.ContactSubmission {
	return domain.ContactSubmission{Name: "Ali", Phone: "+998901234567", Message: "Need a kitchen redesign"}
}

func TestRelay_Delivered(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewContactRelayService(configured, notifier)

	outcome, err := svc.Relay(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDelivered, outcome)
	require.Equal(t, 1, notifier.calls())
	assert.Contains(t, notifier.texts[0], "Ali")
	assert.Contains(t, notifier.texts[0], "Need a kitchen redesign")
}

func TestRelay_SkippedWithoutConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  RelayConfig
	}{
		{"nothing configured", RelayConfig{}},
		{"token only", RelayConfig{BotToken: "123:abc"}},
		{"chat only", RelayConfig{ChatID: "-100"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			svc := NewContactRelayService(tt.cfg, notifier)

			outcome, err := svc.Relay(context.Background(), sample())
			require.NoError(t, err)
			assert.Equal(t, OutcomeSkipped, outcome)
			assert.Zero(t, notifier.calls())
		})
	}
}

func TestRelay_NilNotifierIsSkipped(t *testing.T) {
	svc := NewContactRelayService(configured, nil)

	outcome, err := svc.Relay(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
}

func TestRelay_NotifierError(t *testing.T) {
	cause := errors.New("connection refused")
	notifier := &fakeNotifier{err: cause}
	svc := NewContactRelayService(configured, notifier)

	outcome, err := svc.Relay(context.Background(), sample())
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.ErrorIs(t, err, ErrRelayFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, notifier.calls())
}

func TestRelay_DuplicatesAreNotSuppressed(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewContactRelayService(configured, notifier)

	for i := 0; i < 2; i++ {
		_, err := svc.Relay(context.Background(), sample())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, notifier.calls())
	assert.Equal(t, notifier.texts[0], notifier.texts[1])
}

func TestRelay_TrimsFields(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewContactRelayService(configured, notifier)

	_, err := svc.Relay(context.Background(), domain.ContactSubmission{Name: "  Ali  ", Phone: "+1", Message: "hi"})
	require.NoError(t, err)
	assert.Contains(t, notifier.texts[0], "Ism: Ali\n")
}

func TestRelayOutcome_String(t *testing.T) {
	assert.Equal(t, "delivered", OutcomeDelivered.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
	assert.Equal(t, "unknown", RelayOutcome(42).String())
}
