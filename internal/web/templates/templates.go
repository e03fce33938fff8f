// Package templates embeds the HTML for every screen: a shared base layout,
// one file per page, and htmx-swappable partials.
package templates

import "embed"

//go:embed base.html pages/*.html partials/*.html
var FS embed.FS
