// Package web holds the browser assets compiled into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Static returns the embedded static directory rooted at its contents.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
