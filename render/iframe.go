// SPDX-License-Identifier: EPL-2.0

package render

import (
	_ "embed"
	"fmt"
	"html"

	"github.com/ik5/wavesurf/controls"
	"github.com/ik5/wavesurf/theme"
)

// bundleJS is the vendored wavesurfer.js build, embedded so the iframe
// sub-document works without network access.  Refreshed by
// scripts/syncbundle (see the go:generate directive in doc.go).
//
//go:embed wavesurfer.min.js
var bundleJS string

// Iframe wraps a rendered fragment in a self-contained iframe via
// srcdoc.  The full sub-document, bundle included, is passed as an
// escaped attribute value.
func Iframe(body string, height int) string {
	fullPage := "<!DOCTYPE html>" +
		"<html><head>" +
		"<style>body { margin: 0; background: transparent; }</style>" +
		"<script>" + bundleJS + "</script>" +
		"</head><body>" +
		body +
		"</body></html>"

	return fmt.Sprintf(
		`<iframe srcdoc="%s" `+
			`style="width: 100%%; height: %dpx; border: none; overflow: hidden;" `+
			`allow="autoplay">`+
			`</iframe>`,
		html.EscapeString(fullPage), height)
}

// Waveform height used when the theme leaves Height unset.
const defaultWaveformHeight = 80

// EstimateHeight approximates the pixel height of one player card for
// iframe sizing.  It is a conservative heuristic, not a measured layout:
// vertical padding + title block (when present) + waveform + controls
// bar + card margin.
func EstimateHeight(title string, th theme.Theme, c controls.Controls) int {
	const (
		paddingV   = 40 // "20px 24px" padding, top + bottom
		titleBlock = 42 // ~28px line + 14px margin
		cardMargin = 8
	)

	h := paddingV + cardMargin
	if title != "" {
		h += titleBlock
	}
	if th.Height > 0 {
		h += th.Height
	} else {
		h += defaultWaveformHeight
	}
	h += c.Height()
	return h
}
