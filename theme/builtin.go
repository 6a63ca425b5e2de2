// SPDX-License-Identifier: EPL-2.0

package theme

// Dark is the built-in dark theme and the initial process-wide default.
var Dark = Theme{
	WaveColor:     "#8888aa",
	ProgressColor: "#6c63ff",
	CursorColor:   "#6c63ff",
	BarWidth:      2,
	BarGap:        1,
	BarRadius:     2,
	Height:        80,

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
	PlayButtonBG:    "rgba(108, 99, 255, 0.25)",
	TimeColor:       "rgba(255, 255, 255, 0.4)",

	CardMarginBottom: "8px",
}

// Light is the built-in light theme.
var Light = Theme{
	WaveColor:     "#555577",
	ProgressColor: "#4a56e2",
	CursorColor:   "#4a56e2",
	BarWidth:      2,
	BarGap:        1,
	BarRadius:     2,
	Height:        80,

	Background:      "#f8f8fc",
	Border:          "1px solid rgba(0, 0, 0, 0.08)",
	BorderRadius:    "12px",
	Padding:         "20px 24px",
	FontFamily:      "-apple-system, BlinkMacSystemFont, system-ui, sans-serif",
	TitleColor:      "rgba(0, 0, 0, 0.8)",
	TitleFontSize:   "0.8rem",
	TitleFontWeight: "600",
	PlayButtonStyle: StyleCircle,
	PlayButtonColor: "#333333",
	PlayButtonBG:    "rgba(74, 86, 226, 0.12)",
	TimeColor:       "rgba(0, 0, 0, 0.45)",

	CardMarginBottom: "8px",
}
