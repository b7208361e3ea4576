package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	static, err := Static()
	require.NoError(t, err)

	for _, name := range []string{
		"styles.css",
		"js/navbar.js",
		"js/portfolio.js",
		"js/faq.js",
		"js/world-map.js",
		"js/contact-form.js",
	} {
		_, err := fs.Stat(static, name)
		assert.NoError(t, err, name)
	}
}
