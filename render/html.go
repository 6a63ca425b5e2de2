// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/ik5/wavesurf/controls"
	"github.com/ik5/wavesurf/events"
	"github.com/ik5/wavesurf/options"
	"github.com/ik5/wavesurf/plugins"
	"github.com/ik5/wavesurf/theme"
)

// Spec is everything the pipeline needs to render one player.
type Spec struct {
	UID      string
	URL      string
	Title    string
	Theme    theme.Theme
	Controls controls.Controls
	Options  options.Set
	Events   []events.Handler
	Plugins  []plugins.Config
}

func titleHTML(title string, th theme.Theme) string {
	marker := ""
	if th.TitleMarkerColor != "" && th.TitleMarkerShape != "" {
		marker = fmt.Sprintf(
			`<span style="width: 8px; height: 9px; flex-shrink: 0;`+
				` background: %s; clip-path: %s;"></span>`,
			th.TitleMarkerColor, th.TitleMarkerShape)
	}

	return fmt.Sprintf(
		`<div style="font-size: %s; font-weight: %s; color: %s;`+
			` margin-bottom: 14px; display: flex; align-items: center; gap: 10px;`+
			` font-family: %s;">%s%s</div>`,
		th.TitleFontSize, th.TitleFontWeight, th.TitleColor,
		th.FontFamily, marker, html.EscapeString(title))
}

func containerHTML(spec Spec, th theme.Theme, controlsHTML string) string {
	accent := ""
	if th.TopAccent != "" {
		accent = fmt.Sprintf(
			`<div style="position: absolute; top: 0; left: 0; right: 0; height: 2px;`+
				` background: %s; z-index: 1;"></div>`,
			th.TopAccent)
	}

	pattern := ""
	if th.BackgroundPattern != "" {
		pattern = fmt.Sprintf(
			`<div style="position: absolute; inset: 0;`+
				` background-image: %s; pointer-events: none; z-index: 0;"></div>`,
			th.BackgroundPattern)
	}

	// Empty titles suppress the whole block, not an empty element.
	title := ""
	if spec.Title != "" {
		title = titleHTML(spec.Title, th)
	}

	mount := fmt.Sprintf(
		`<div id="waveform-%s" style="border-radius: 8px; overflow: hidden;"></div>`,
		spec.UID)

	inner := title + mount + controlsHTML
	if spec.Controls.Layout == controls.LayoutTop {
		inner = title + controlsHTML + mount
	}

	return fmt.Sprintf(
		`<div id="player-%s" style="`+
			`background: %s; border-radius: %s;`+
			` padding: %s; border: %s;`+
			` font-family: %s;`+
			` margin-bottom: %s;`+
			` position: relative; overflow: hidden;">`+
			`%s%s`+
			`<div style="position: relative; z-index: 1;">%s</div></div>`,
		spec.UID,
		th.Background, th.BorderRadius,
		th.Padding, th.Border,
		th.FontFamily,
		th.CardMarginBottom,
		accent, pattern, inner)
}

// pluginScripts emits one script element per plugin bundle: a src
// reference for URLs, inline otherwise.  Plugins without a source are
// assumed to be in page scope already.
func pluginScripts(configs []plugins.Config) string {
	var b strings.Builder
	for _, p := range configs {
		switch {
		case p.JSSource == "":
		case strings.HasPrefix(p.JSSource, "http://"), strings.HasPrefix(p.JSSource, "https://"):
			fmt.Fprintf(&b, `<script src="%s"></script>`+"\n", html.EscapeString(p.JSSource))
		default:
			fmt.Fprintf(&b, "<script>%s</script>\n", p.JSSource)
		}
	}
	return b.String()
}

// Player builds the complete HTML + script fragment for one player,
// without the iframe wrapper.
func Player(spec Spec) (string, error) {
	th := spec.Theme.Normalized()

	controlsHTML := controls.BarHTML(spec.UID, spec.Controls, th)
	wiring := controls.WiringJS(spec.UID, spec.Controls, "ws")

	container := containerHTML(spec, th, controlsHTML)

	script, err := playerScript(spec, wiring)
	if err != nil {
		return "", err
	}

	return container + "\n" + pluginScripts(spec.Plugins) +
		"<script>\n" + script + "\n</script>", nil
}
