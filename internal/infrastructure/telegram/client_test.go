package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, captured *sendMessageRequest, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if captured != nil {
			require.NoError(t, json.Unmarshal(raw, captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSendText_OK(t *testing.T) {
	var captured sendMessageRequest
	var calls int32
	srv := newTestServer(t, http.StatusOK, `{"ok":true,"result":{"message_id":1}}`, &captured, &calls)

	client := NewClient(Config{APIBase: srv.URL + "/", BotToken: "123:abc", ChatID: "-100"})
	err := client.SendText(context.Background(), "hello <b>world</b>")
	require.NoError(t, err)

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, "-100", captured.ChatID)
	assert.Equal(t, "hello <b>world</b>", captured.Text)
	assert.Equal(t, "HTML", captured.ParseMode)
}

func TestSendText_APIError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, nil, nil)

	client := NewClient(Config{APIBase: srv.URL, BotToken: "123:abc", ChatID: "-100"})
	err := client.SendText(context.Background(), "hello")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, 400, apiErr.ErrorCode)
	assert.Equal(t, "Bad Request: chat not found", apiErr.Description)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendText_NonJSONErrorBody(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, `upstream down`, nil, nil)

	client := NewClient(Config{APIBase: srv.URL, BotToken: "123:abc", ChatID: "-100"})
	err := client.SendText(context.Background(), "hello")

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Body)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestSendText_TransportFailureRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := NewClient(Config{APIBase: base, BotToken: "123:secret", ChatID: "-100", Timeout: time.Second})
	err := client.SendText(context.Background(), "hello")
	require.Error(t, err)

	_, isAPI := IsAPIError(err)
	assert.False(t, isAPI)
	assert.NotContains(t, err.Error(), "123:secret")
}

func TestSendText_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the server only sees the disconnect once the body is consumed
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(Config{APIBase: srv.URL, BotToken: "123:abc", ChatID: "-100"})
	err := client.SendText(ctx, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{BotToken: "t", ChatID: "c"})
	assert.Equal(t, DefaultAPIBase, client.rest.BaseURL)
	assert.Equal(t, "HTML", client.parseMode)
}
