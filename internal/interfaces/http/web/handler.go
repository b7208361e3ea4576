package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
	"github.com/luxe-studio/luxe-site/internal/site/components"
)

// Handler serves the server-rendered landing page and its no-JS form fallback.
type Handler struct {
	logger *zap.Logger
	relay  publicapp.ContactRelayService
	now    func() time.Time
}

type Config struct {
	Logger *zap.Logger
	Relay  publicapp.ContactRelayService
	Now    func() time.Time
}

func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		logger: logger,
		relay:  cfg.Relay,
		now:    now,
	}
}

// Register mounts the page routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.LandingPage)
	r.Post("/contact", h.contactFormHandler())
}

// LandingPage renders the page with section state taken from the query string.
// It also serves as the fallback for unknown non-API paths.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	state := components.FromQuery(r.URL.Query())
	state.Year = h.now().Year()
	h.render(w, http.StatusOK, components.LandingPage(state))
}

func (h *Handler) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		h.logger.Error("render page", zap.Error(err))
	}
}
