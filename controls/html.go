// SPDX-License-Identifier: EPL-2.0

package controls

import (
	"fmt"
	"strings"

	"github.com/ik5/wavesurf/theme"
)

func shieldButton(uid string, th theme.Theme) string {
	glow := ""
	if th.PlayButtonHoverGlow != "" {
		glow = fmt.Sprintf(" this.style.filter='%s';", th.PlayButtonHoverGlow)
	}
	return fmt.Sprintf(`<button id="play-%[1]s" style="
  width: 36px; height: 40px; border: none; cursor: pointer;
  display: flex; align-items: center; justify-content: center;
  padding: 0; background: transparent; position: relative;
  transition: transform 0.2s ease, filter 0.2s ease;
" onmouseover="this.style.transform='scale(1.1)';%[2]s"
   onmouseout="this.style.transform='scale(1)'; this.style.filter='none'"
>
  <svg style="position: absolute; inset: 0; width: 100%%; height: 100%%;"
       viewBox="0 0 36 40" fill="none" xmlns="http://www.w3.org/2000/svg">
    <path d="M18 0L36 6V22C36 31 27 37.5 18 40C9 37.5 0 31 0 22V6L18 0Z"
          fill="url(#copperGrad-%[1]s)"/>
    <defs>
      <linearGradient id="copperGrad-%[1]s" x1="0" y1="0" x2="36" y2="40">
        <stop offset="0%%" stop-color="#d4a96a"/>
        <stop offset="100%%" stop-color="#b98b5a"/>
      </linearGradient>
    </defs>
  </svg>
  <span id="icon-%[1]s" style="
    position: relative; z-index: 1; color: %[3]s;
    font-size: 11px; margin-left: 2px; line-height: 1;
  ">&#9654;</span>
</button>`, uid, glow, th.PlayButtonColor)
}

func circleButton(uid string, th theme.Theme) string {
	return fmt.Sprintf(`<button id="play-%[1]s" style="
  width: 36px; height: 36px; border-radius: 50%%; border: none; cursor: pointer;
  display: flex; align-items: center; justify-content: center;
  padding: 0; background: %[2]s;
  color: %[3]s; font-size: 13px;
  transition: transform 0.15s ease, opacity 0.15s ease;
" onmouseover="this.style.transform='scale(1.08)'; this.style.opacity='0.85'"
   onmouseout="this.style.transform='scale(1)'; this.style.opacity='1'"
>
  <span id="icon-%[1]s" style="margin-left: 2px; line-height: 1;">&#9654;</span>
</button>`, uid, th.PlayButtonBG, th.PlayButtonColor)
}

func minimalButton(uid string, th theme.Theme) string {
	return fmt.Sprintf(`<button id="play-%[1]s" style="
  border: none; cursor: pointer; background: transparent;
  color: %[2]s; font-size: 18px; padding: 4px 8px;
  transition: opacity 0.15s ease;
" onmouseover="this.style.opacity='0.7'"
   onmouseout="this.style.opacity='1'"
>
  <span id="icon-%[1]s">&#9654;</span>
</button>`, uid, th.PlayButtonColor)
}

// BarHTML generates the control bar markup.  Element ids are prefixed
// per control kind (play-, time-, volume-, rate-) and namespaced by uid.
// Returns "" when no control is enabled.
func BarHTML(uid string, c Controls, th theme.Theme) string {
	var parts []string

	if c.PlayButton {
		switch c.EffectiveStyle(th) {
		case theme.StyleShield:
			parts = append(parts, shieldButton(uid, th))
		case theme.StyleMinimal:
			parts = append(parts, minimalButton(uid, th))
		default:
			parts = append(parts, circleButton(uid, th))
		}
	}

	if c.Time {
		parts = append(parts, fmt.Sprintf(
			`<span id="time-%s" style="`+
				`font-size: 0.72rem; font-weight: 500; color: %s;`+
				` font-variant-numeric: tabular-nums; letter-spacing: 0.02em;`+
				`">0:00 / 0:00</span>`,
			uid, th.TimeColor))
	}

	if c.Volume {
		accent := th.CursorColor
		if accent == "" {
			accent = "#6c63ff"
		}
		parts = append(parts, fmt.Sprintf(
			`<input id="volume-%s" type="range" min="0" max="1" step="0.05"`+
				` value="1" style="width: 80px; accent-color: %s;">`,
			uid, accent))
	}

	if c.PlaybackRate {
		parts = append(parts, fmt.Sprintf(
			`<select id="rate-%s" style="`+
				`background: transparent; color: %s;`+
				` border: 1px solid rgba(255,255,255,0.15); border-radius: 4px;`+
				` padding: 2px 4px; font-size: 0.7rem;`+
				`">`+
				`<option value="0.5">0.5x</option>`+
				`<option value="0.75">0.75x</option>`+
				`<option value="1" selected>1x</option>`+
				`<option value="1.25">1.25x</option>`+
				`<option value="1.5">1.5x</option>`+
				`<option value="2">2x</option>`+
				`</select>`,
			uid, th.TimeColor))
	}

	if len(parts) == 0 {
		return ""
	}

	margin := "margin-top: 14px;"
	if c.Layout == LayoutTop {
		margin = "margin-bottom: 14px;"
	}
	return fmt.Sprintf(
		`<div id="controls-%s" style="display: flex; align-items: center; gap: 14px; %s">%s</div>`,
		uid, margin, strings.Join(parts, ""))
}

// WiringJS generates the statements binding each enabled control to the
// player object named by wsVar.
func WiringJS(uid string, c Controls, wsVar string) string {
	if !c.Any() {
		return ""
	}

	var lines []string

	// Elapsed/total formatter: M:SS.
	lines = append(lines,
		`var fmt = function(s) {`+
			` var m = Math.floor(s / 60);`+
			` var sec = Math.floor(s % 60);`+
			` return m + ":" + (sec < 10 ? "0" : "") + sec;`+
			`};`)

	if c.PlayButton {
		lines = append(lines,
			fmt.Sprintf(`var btn = document.getElementById("play-%s");`, uid),
			fmt.Sprintf(`var iconEl = document.getElementById("icon-%s");`, uid),
			fmt.Sprintf(`btn.addEventListener("click", function() { %s.playPause(); });`, wsVar),
			fmt.Sprintf(`%s.on("play", function() { iconEl.innerHTML = "&#9646;&#9646;"; });`, wsVar),
			fmt.Sprintf(`%s.on("pause", function() { iconEl.innerHTML = "&#9654;"; });`, wsVar))
	}

	if c.Time {
		lines = append(lines,
			fmt.Sprintf(`var timeEl = document.getElementById("time-%s");`, uid),
			fmt.Sprintf(`%[1]s.on("audioprocess", function(t) { timeEl.textContent = fmt(t) + " / " + fmt(%[1]s.getDuration()); });`, wsVar),
			fmt.Sprintf(`%[1]s.on("ready", function() { timeEl.textContent = "0:00 / " + fmt(%[1]s.getDuration()); });`, wsVar))
	}

	if c.Volume {
		lines = append(lines,
			fmt.Sprintf(`var volEl = document.getElementById("volume-%s");`, uid),
			fmt.Sprintf(`volEl.addEventListener("input", function() { %s.setVolume(parseFloat(this.value)); });`, wsVar))
	}

	if c.PlaybackRate {
		lines = append(lines,
			fmt.Sprintf(`var rateEl = document.getElementById("rate-%s");`, uid),
			fmt.Sprintf(`rateEl.addEventListener("change", function() { %s.setPlaybackRate(parseFloat(this.value)); });`, wsVar))
	}

	return strings.Join(lines, "\n")
}
