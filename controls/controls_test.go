// SPDX-License-Identifier: EPL-2.0

package controls

import (
	"strings"
	"testing"

	"github.com/ik5/wavesurf/theme"
)

func TestEffectiveStyle(t *testing.T) {
	t.Parallel()

	shieldTheme := theme.Dark
	shieldTheme.PlayButtonStyle = theme.StyleShield

	tests := []struct {
		name     string
		controls Controls
		th       theme.Theme
		want     theme.ButtonStyle
	}{
		{
			name:     "explicit beats theme",
			controls: Controls{PlayButton: true, Style: theme.StyleMinimal},
			th:       shieldTheme,
			want:     theme.StyleMinimal,
		},
		{
			name:     "inherits from theme",
			controls: Controls{PlayButton: true},
			th:       shieldTheme,
			want:     theme.StyleShield,
		},
		{
			name:     "falls back to circle",
			controls: Controls{PlayButton: true},
			th:       theme.Theme{},
			want:     theme.StyleCircle,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.controls.EffectiveStyle(tt.th); got != tt.want {
				t.Errorf("EffectiveStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBarHTML_ElementIDs(t *testing.T) {
	t.Parallel()

	c := Controls{PlayButton: true, Time: true, Volume: true, PlaybackRate: true}
	html := BarHTML("abc123", c, theme.Dark)

	for _, id := range []string{
		`id="play-abc123"`,
		`id="time-abc123"`,
		`id="volume-abc123"`,
		`id="rate-abc123"`,
		`id="controls-abc123"`,
	} {
		if !strings.Contains(html, id) {
			t.Errorf("BarHTML() missing %s", id)
		}
	}
}

func TestBarHTML_Empty(t *testing.T) {
	t.Parallel()

	if html := BarHTML("x", Controls{}, theme.Dark); html != "" {
		t.Errorf("BarHTML() with no controls = %q, want empty", html)
	}
}

func TestBarHTML_ButtonVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		style  theme.ButtonStyle
		marker string
		absent string
	}{
		{name: "shield has svg badge", style: theme.StyleShield, marker: "<svg", absent: "border-radius: 50%"},
		{name: "circle is round", style: theme.StyleCircle, marker: "border-radius: 50%", absent: "<svg"},
		{name: "minimal is text only", style: theme.StyleMinimal, marker: "background: transparent", absent: "<svg"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := BarHTML("u1", Controls{PlayButton: true, Style: tt.style}, theme.Dark)
			if !strings.Contains(html, tt.marker) {
				t.Errorf("BarHTML(%q) missing %q", tt.style, tt.marker)
			}
			if strings.Contains(html, tt.absent) {
				t.Errorf("BarHTML(%q) unexpectedly contains %q", tt.style, tt.absent)
			}
		})
	}
}

func TestBarHTML_LayoutMargin(t *testing.T) {
	t.Parallel()

	bottom := BarHTML("u", Controls{Time: true}, theme.Dark)
	if !strings.Contains(bottom, "margin-top: 14px") {
		t.Errorf("bottom layout should use margin-top, got %q", bottom)
	}

	top := BarHTML("u", Controls{Time: true, Layout: LayoutTop}, theme.Dark)
	if !strings.Contains(top, "margin-bottom: 14px") {
		t.Errorf("top layout should use margin-bottom, got %q", top)
	}
}

func TestWiringJS(t *testing.T) {
	t.Parallel()

	c := Controls{PlayButton: true, Time: true, Volume: true, PlaybackRate: true}
	js := WiringJS("u9", c, "ws")

	for _, stmt := range []string{
		`ws.playPause();`,
		`ws.on("play"`,
		`ws.on("pause"`,
		`ws.on("audioprocess"`,
		`ws.on("ready"`,
		`ws.setVolume(parseFloat(this.value));`,
		`ws.setPlaybackRate(parseFloat(this.value));`,
		`getElementById("play-u9")`,
		`getElementById("time-u9")`,
		`getElementById("volume-u9")`,
		`getElementById("rate-u9")`,
	} {
		if !strings.Contains(js, stmt) {
			t.Errorf("WiringJS() missing %q", stmt)
		}
	}
}

func TestWiringJS_Empty(t *testing.T) {
	t.Parallel()

	if js := WiringJS("u", Controls{}, "ws"); js != "" {
		t.Errorf("WiringJS() with no controls = %q, want empty", js)
	}
}

func TestHeight(t *testing.T) {
	t.Parallel()

	if got := (Controls{}).Height(); got != 0 {
		t.Errorf("Height() with no controls = %d, want 0", got)
	}
	if got := Default().Height(); got != 54 {
		t.Errorf("Height() with controls = %d, want 54", got)
	}
	if got := (Controls{Volume: true}).Height(); got != 54 {
		t.Errorf("Height() with volume only = %d, want 54", got)
	}
}
