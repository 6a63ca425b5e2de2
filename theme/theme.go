// SPDX-License-Identifier: EPL-2.0

package theme

// ButtonStyle selects the play-button visual variant.
type ButtonStyle string

const (
	StyleShield  ButtonStyle = "shield"
	StyleCircle  ButtonStyle = "circle"
	StyleMinimal ButtonStyle = "minimal"
)

// Theme is a bundle of style attributes for a player.  The waveform
// group flows into the wavesurfer.js options as default overrides; the
// chrome group is consumed only by HTML generation.
//
// Theme is a value type: derive variants by copying and assigning
// fields.  Zero waveform fields mean "unset" and are not emitted;
// zero chrome fields fall back to the Base defaults at render time.
type Theme struct {
	// Waveform appearance (merged into the option set).
	WaveColor     any // CSS color string or gradient stop list
	ProgressColor any
	CursorColor   string
	BarWidth      int
	BarGap        int
	BarRadius     int
	Height        int

	// Container chrome.
	Background   string
	Border       string
	BorderRadius string
	Padding      string
	FontFamily   string

	// Title styling.
	TitleColor       string
	TitleFontSize    string
	TitleFontWeight  string
	TitleMarkerColor string // marker glyph before the title
	TitleMarkerShape string // CSS clip-path for the marker

	// Play button styling.
	PlayButtonStyle     ButtonStyle
	PlayButtonColor     string
	PlayButtonBG        string
	PlayButtonHoverGlow string

	// Time display.
	TimeColor string

	// Decorative overlays, emitted only when set.
	TopAccent         string // gradient line across the top edge
	BackgroundPattern string // repeating SVG/CSS pattern

	// Margin between stacked cards.
	CardMarginBottom string
}

// themeRef makes Theme usable wherever a Ref is expected.
func (Theme) themeRef() {}

// Base returns the chrome defaults shared by all themes.  Custom themes
// usually start from Base, Dark, or Light and override fields.
func Base() Theme {
	return Theme{
		Background:      "#1a1a2e",
		Border:          "1px solid rgba(255, 255, 255, 0.08)",
		BorderRadius:    "12px",
		Padding:         "20px 24px",
		FontFamily:      "-apple-system, BlinkMacSystemFont, system-ui, sans-serif",
		TitleColor:      "rgba(255, 255, 255, 0.85)",
		TitleFontSize:   "0.8rem",
		TitleFontWeight: "600",
		PlayButtonStyle: StyleCircle,
		PlayButtonColor: "#ffffff",
		PlayButtonBG:    "rgba(255, 255, 255, 0.12)",
		TimeColor:       "rgba(255, 255, 255, 0.4)",

		CardMarginBottom: "8px",
	}
}

// WaveformOverrides returns the set waveform fields keyed by their
// snake_case option names, ready to merge into an options.Set.  Chrome
// fields never appear here.
func (t Theme) WaveformOverrides() map[string]any {
	out := make(map[string]any)
	if t.WaveColor != nil {
		out["wave_color"] = t.WaveColor
	}
	if t.ProgressColor != nil {
		out["progress_color"] = t.ProgressColor
	}
	if t.CursorColor != "" {
		out["cursor_color"] = t.CursorColor
	}
	if t.BarWidth != 0 {
		out["bar_width"] = t.BarWidth
	}
	if t.BarGap != 0 {
		out["bar_gap"] = t.BarGap
	}
	if t.BarRadius != 0 {
		out["bar_radius"] = t.BarRadius
	}
	if t.Height != 0 {
		out["height"] = t.Height
	}
	return out
}

// Normalized returns a copy of t with every unset chrome field filled
// from Base, so partially specified custom themes still render with
// complete styling.
func (t Theme) Normalized() Theme {
	base := Base()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&t.Background, base.Background)
	fill(&t.Border, base.Border)
	fill(&t.BorderRadius, base.BorderRadius)
	fill(&t.Padding, base.Padding)
	fill(&t.FontFamily, base.FontFamily)
	fill(&t.TitleColor, base.TitleColor)
	fill(&t.TitleFontSize, base.TitleFontSize)
	fill(&t.TitleFontWeight, base.TitleFontWeight)
	fill(&t.PlayButtonColor, base.PlayButtonColor)
	fill(&t.PlayButtonBG, base.PlayButtonBG)
	fill(&t.TimeColor, base.TimeColor)
	fill(&t.CardMarginBottom, base.CardMarginBottom)
	if t.PlayButtonStyle == "" {
		t.PlayButtonStyle = base.PlayButtonStyle
	}
	return t
}
