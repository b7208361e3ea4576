package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/luxe-studio/luxe-site/internal/metrics"
)

// DefaultAPIBase is the public Bot API endpoint.
const DefaultAPIBase = "https://api.telegram.org"

const maxErrorBody = 1 << 16

// APIError is returned when the Bot API answers with a non-ok response.
type APIError struct {
	StatusCode  int
	ErrorCode   int
	Description string
	Body        string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("telegram api error: status=%d code=%d description=%s", e.StatusCode, e.ErrorCode, e.Description)
	}
	return fmt.Sprintf("telegram api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Config defines how the client reaches the Bot API.
type Config struct {
	APIBase   string
	BotToken  string
	ChatID    string
	ParseMode string
	Timeout   time.Duration
	// HTTPClient overrides the underlying transport; mostly useful in tests.
	HTTPClient *http.Client
}

// Client sends messages to one chat through the Bot API sendMessage method.
type Client struct {
	rest      *resty.Client
	token     string
	chatID    string
	parseMode string
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewClient constructs a Client. An empty APIBase falls back to DefaultAPIBase
// and an empty ParseMode to HTML.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if base == "" {
		base = DefaultAPIBase
	}
	parseMode := cfg.ParseMode
	if parseMode == "" {
		parseMode = "HTML"
	}

	var rest *resty.Client
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rest = resty.New()
	}
	rest.SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		rest.SetTimeout(cfg.Timeout)
	}

	return &Client{
		rest:      rest,
		token:     cfg.BotToken,
		chatID:    cfg.ChatID,
		parseMode: parseMode,
	}
}

// SendText posts text to the configured chat. A transport failure is returned
// wrapped; a non-ok answer from Telegram is returned as *APIError.
func (c *Client) SendText(ctx context.Context, text string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	res, err := c.rest.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{
			ChatID:    c.chatID,
			Text:      text,
			ParseMode: c.parseMode,
		}).
		Post("/bot" + c.token + "/sendMessage")
	metrics.TelegramRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("telegram sendMessage request failed: %w", redact(err, c.token))
	}

	// any 2xx counts as delivered, regardless of the body
	if res.IsSuccess() {
		return nil
	}

	body := res.Body()
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	apiErr := &APIError{
		StatusCode: res.StatusCode(),
		Body:       strings.TrimSpace(string(body)),
	}
	var decoded apiResponse
	if json.Unmarshal(res.Body(), &decoded) == nil {
		apiErr.ErrorCode = decoded.ErrorCode
		apiErr.Description = decoded.Description
	}
	return apiErr
}

// redactedError hides the bot token that net/http embeds in *url.Error messages.
type redactedError struct {
	err   error
	token string
}

func (e *redactedError) Error() string {
	return strings.ReplaceAll(e.err.Error(), e.token, "<redacted>")
}

func (e *redactedError) Unwrap() error {
	return e.err
}

func redact(err error, token string) error {
	if err == nil || token == "" {
		return err
	}
	return &redactedError{err: err, token: token}
}

// IsAPIError reports whether err carries a non-ok Bot API response.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
