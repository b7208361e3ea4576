package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/luxe-studio/luxe-site/internal/config"
	"github.com/luxe-studio/luxe-site/web"
)

const productionCacheControl = "public, max-age=86400"

// newAssetHandler picks where /static/* is served from.
//
//	development: ASSETS_DIR on disk, uncached; falls back to the embedded copy if missing
//	production:  STATIC_DIR if it exists, otherwise the embedded copy; cached
func newAssetHandler(cfg config.Config, lg *zap.Logger) (http.Handler, error) {
	dir := cfg.StaticDir
	if cfg.IsDevelopment() {
		dir = cfg.AssetsDir
	}

	var (
		source fs.FS
		origin string
	)
	if dirExists(dir) {
		source = os.DirFS(dir)
		origin = dir
	} else {
		embedded, err := web.Static()
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded assets: %w", err)
		}
		source = embedded
		origin = "embedded"
	}
	lg.Info("serving static assets", zap.String("source", origin), zap.String("env", cfg.Environment))

	cacheControl := productionCacheControl
	if cfg.IsDevelopment() {
		cacheControl = "no-store"
	}
	return withCacheControl(cacheControl, http.FileServer(http.FS(source))), nil
}

func withCacheControl(value string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)
		next.ServeHTTP(w, r)
	})
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
