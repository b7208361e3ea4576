package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/config"
	"github.com/luxe-studio/luxe-site/internal/infrastructure/telegram"
	commonhttp "github.com/luxe-studio/luxe-site/internal/interfaces/http/common"
	publichttp "github.com/luxe-studio/luxe-site/internal/interfaces/http/public"
	webhttp "github.com/luxe-studio/luxe-site/internal/interfaces/http/web"
	"github.com/luxe-studio/luxe-site/internal/logger"
	publicapp "github.com/luxe-studio/luxe-site/internal/public/application"
)

// Server は HTTP サーバーのライフサイクルを管理し、各ハンドラへ依存注入するコンポジションルート。
// Server owns the HTTP lifecycle and wires the handlers to the relay service.
type Server struct {
	cfg    config.Config
	logger *zap.Logger
	relay  publicapp.ContactRelayService
	assets http.Handler
}

// New builds the relay service and resolves the asset source for cfg.
func New(cfg config.Config, lg *zap.Logger) (*Server, error) {
	if lg == nil {
		lg = zap.NewNop()
	}

	var notifier publicapp.Notifier
	if cfg.Telegram.Configured() {
		notifier = telegram.NewClient(telegram.Config{
			APIBase:  cfg.Telegram.APIBase,
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
			Timeout:  cfg.Telegram.Timeout,
		})
	} else {
		lg.Warn("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set; contact submissions will not be forwarded")
	}

	assets, err := newAssetHandler(cfg, lg)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:    cfg,
		logger: lg,
		relay: publicapp.NewContactRelayService(publicapp.RelayConfig{
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
		}, notifier),
		assets: assets,
	}, nil
}

// Handler assembles the router: middleware, API, page and asset routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.RequestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(s.securityHeaders().Handler)

	router.Get("/healthz", s.healthHandler())
	if s.cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger: s.logger,
		Relay:  s.relay,
	})
	router.Route("/api", func(r chi.Router) {
		r.Use(withCORS(s.cfg.AllowedOrigins))
		r.NotFound(s.apiNotFound)
		r.MethodNotAllowed(s.apiMethodNotAllowed)
		publicHandler.Register(r)
	})

	webHandler := webhttp.NewHandler(webhttp.Config{
		Logger: s.logger,
		Relay:  s.relay,
	})
	webHandler.Register(router)
	router.Handle("/static/*", http.StripPrefix("/static/", s.assets))
	router.NotFound(s.pageFallback(webHandler.LandingPage))

	return router
}

// Run starts listening and blocks until the server fails or a shutdown signal arrives.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening",
			zap.String("addr", "http://"+s.cfg.Addr()),
			zap.String("env", s.cfg.Environment),
			zap.Bool("telegram", s.cfg.Telegram.Configured()),
		)
		errChan <- httpServer.ListenAndServe()
	}()

	return s.waitForShutdown(httpServer, errChan)
}

func (s *Server) securityHeaders() *secure.Secure {
	return secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLRedirect:        s.cfg.TLSRedirect,
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      s.cfg.IsDevelopment(),
	})
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	_, ok := allowed[origin]
	return ok
}

func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func (s *Server) apiNotFound(w http.ResponseWriter, _ *http.Request) {
	commonhttp.WriteJSON(s.logger, w, http.StatusNotFound, map[string]any{
		"success": false,
		"error":   "Not found",
	})
}

func (s *Server) apiMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	commonhttp.WriteJSON(s.logger, w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"error":   "Method not allowed",
	})
}

// pageFallback renders the landing page for any unmatched GET so client-side
// anchors and deep links resolve to the single page.
func (s *Server) pageFallback(page http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}
		page(w, r)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func (s *Server) waitForShutdown(httpServer *http.Server, errChan <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		s.logger.Info("http server stopped")
		return nil
	}
}
