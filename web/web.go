// Package web holds the static assets served by the HTTP layer.
package web

import _ "embed"

// IndexHTML is the landing page served at "/".
//
//go:embed index.html
var IndexHTML []byte
