// SPDX-License-Identifier: EPL-2.0

package controls

import (
	"github.com/ik5/wavesurf/theme"
)

// Layout positions the control bar relative to the waveform.
type Layout string

const (
	LayoutBottom Layout = "bottom"
	LayoutTop    Layout = "top"
)

// Controls selects which player controls are rendered.  The zero value
// shows nothing; Default returns the usual play button + time display.
type Controls struct {
	PlayButton   bool
	Time         bool
	Volume       bool
	PlaybackRate bool

	// Style overrides the theme's play-button variant when set.
	Style theme.ButtonStyle
	// Layout places the bar below (default) or above the waveform.
	Layout Layout
}

// Default returns the standard configuration: play button and time.
func Default() Controls {
	return Controls{PlayButton: true, Time: true}
}

// Any reports whether at least one control is enabled.
func (c Controls) Any() bool {
	return c.PlayButton || c.Time || c.Volume || c.PlaybackRate
}

// EffectiveStyle resolves the play-button variant, preferring the
// explicit Controls setting over the theme's default.
func (c Controls) EffectiveStyle(th theme.Theme) theme.ButtonStyle {
	if c.Style != "" {
		return c.Style
	}
	if th.PlayButtonStyle != "" {
		return th.PlayButtonStyle
	}
	return theme.StyleCircle
}

// Height estimates the pixels the control bar adds to the card: the bar
// margin plus the tallest control, or zero when nothing is shown.
func (c Controls) Height() int {
	if !c.Any() {
		return 0
	}
	// 14px margin + 40px button height
	return 54
}
