package public

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
)

// Handler wires public API endpoints to application services.
type Handler struct {
	logger *zap.Logger
	relay  publicapp.ContactRelayService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger *zap.Logger
	Relay  publicapp.ContactRelayService
}

// NewHandler constructs a public API handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger: logger,
		relay:  cfg.Relay,
	}
}

// Register mounts all public API routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/contact", h.contactHandler())
}
