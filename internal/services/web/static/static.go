// Package static embeds the dashboard's CSS and JS assets.
package static

import "embed"

//go:embed *.css *.js
var FS embed.FS
