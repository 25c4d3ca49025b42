package templates

import "embed"

// FS holds the file templates the generators render.
//
//go:embed *.tmpl
var FS embed.FS
