// SPDX-License-Identifier: EPL-2.0

package render

import (
	"strings"
	"testing"

	"github.com/ik5/wavesurf/controls"
	"github.com/ik5/wavesurf/events"
	"github.com/ik5/wavesurf/options"
	"github.com/ik5/wavesurf/plugins"
	"github.com/ik5/wavesurf/theme"
)

func baseSpec() Spec {
	return Spec{
		UID:      "u123",
		URL:      "https://example.com/a.wav",
		Theme:    theme.Dark,
		Controls: controls.Default(),
	}
}

func TestPlayer_ContainerAndMount(t *testing.T) {
	t.Parallel()

	html, err := Player(baseSpec())
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}

	for _, sub := range []string{
		`id="player-u123"`,
		`id="waveform-u123"`,
		`"container":"#waveform-u123"`,
		`"url":"https://example.com/a.wav"`,
		theme.Dark.Background,
	} {
		if !strings.Contains(html, sub) {
			t.Errorf("Player() missing %q", sub)
		}
	}
}

func TestPlayer_StabilityDefaults(t *testing.T) {
	t.Parallel()

	html, err := Player(baseSpec())
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(html, `"hideScrollbar":true`) {
		t.Error("Player() missing hideScrollbar default")
	}
	if !strings.Contains(html, `"cursorWidth":2`) {
		t.Error("Player() missing cursorWidth default")
	}
}

func TestPlayer_ExplicitOptionsBeatDefaults(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Options = options.FromOverrides(map[string]any{
		"hide_scrollbar": false,
		"cursor_width":   7,
	})

	html, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(html, `"hideScrollbar":false`) {
		t.Errorf("explicit hide_scrollbar=false lost: %s", html)
	}
	if !strings.Contains(html, `"cursorWidth":7`) {
		t.Errorf("explicit cursor_width=7 lost: %s", html)
	}
}

func TestPlayer_TitleEscaped(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Title = `<script>alert("xss")</script>`

	html, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Error("Player() emitted unescaped title markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("Player() did not escape the title")
	}

	// The whole iframe output must stay clean too.
	wrapped := Iframe(html, 200)
	if strings.Contains(wrapped, "<script>alert") {
		t.Error("Iframe() emitted unescaped title markup")
	}
}

func TestPlayer_EmptyTitleSuppressed(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Title = ""

	withTitle := spec
	withTitle.Title = "Session A"

	plain, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	titled, err := Player(withTitle)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}

	if strings.Contains(plain, "margin-bottom: 14px; display: flex") {
		t.Error("empty title still rendered a title block")
	}
	if !strings.Contains(titled, "Session A") {
		t.Error("titled render lost the title text")
	}
}

func TestPlayer_DecorativeOverlaysConditional(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	plain, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if strings.Contains(plain, "height: 2px") {
		t.Error("top accent rendered without a theme value")
	}

	spec.Theme.TopAccent = "linear-gradient(90deg, #d4a96a, #b98b5a)"
	spec.Theme.BackgroundPattern = "radial-gradient(circle, #222 1px, transparent 0)"
	decorated, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(decorated, spec.Theme.TopAccent) {
		t.Error("top accent missing")
	}
	if !strings.Contains(decorated, spec.Theme.BackgroundPattern) {
		t.Error("background pattern missing")
	}
}

func TestPlayer_PluginsAndEvents(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Plugins = []plugins.Config{plugins.Timeline(plugins.TimelineOptions{})}
	spec.Events = []events.Handler{events.Once(events.Ready, "boot();")}

	html, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(html, `ws.registerPlugin(Timeline.create({"height":20}));`) {
		t.Errorf("plugin registration missing: %s", html)
	}
	if !strings.Contains(html, `ws.once("ready", function(duration) { boot(); });`) {
		t.Errorf("event binding missing: %s", html)
	}
}

func TestPlayer_PluginSources(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Plugins = []plugins.Config{
		{Name: "Timeline", JSSource: "https://cdn.example.com/timeline.min.js"},
		{Name: "Inline", JSSource: "var Inline = {create: function() { return {}; }};"},
	}

	html, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(html, `<script src="https://cdn.example.com/timeline.min.js"></script>`) {
		t.Error("URL plugin source not referenced")
	}
	if !strings.Contains(html, "var Inline = {create:") {
		t.Error("inline plugin source not embedded")
	}
}

func TestPlayer_RawRenderFunction(t *testing.T) {
	t.Parallel()

	spec := baseSpec()
	spec.Options = options.FromOverrides(map[string]any{
		"render_function": "(peaks, ctx) => { ctx.stroke(); }",
	})

	html, err := Player(spec)
	if err != nil {
		t.Fatalf("Player() error: %v", err)
	}
	if !strings.Contains(html, `"renderFunction": (peaks, ctx) => { ctx.stroke(); }`) {
		t.Errorf("render function not spliced raw: %s", html)
	}
}

func TestIframe(t *testing.T) {
	t.Parallel()

	out := Iframe(`<div id="x"></div>`, 154)

	if !strings.Contains(out, `height: 154px`) {
		t.Errorf("Iframe() missing height: %s", out)
	}
	if !strings.Contains(out, `srcdoc="`) {
		t.Error("Iframe() missing srcdoc attribute")
	}
	if !strings.Contains(out, `allow="autoplay"`) {
		t.Error("Iframe() missing autoplay allowance")
	}
	// The sub-document is escaped into the attribute; no raw tags may
	// leak out of it.
	inner := strings.TrimPrefix(out, `<iframe srcdoc="`)
	end := strings.Index(inner, `"`)
	if end < 0 {
		t.Fatal("Iframe() srcdoc attribute not terminated")
	}
	if strings.ContainsAny(inner[:end], "<>") {
		t.Error("Iframe() srcdoc contains unescaped markup")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("Iframe() did not embed the bundle script")
	}
}

func TestEstimateHeight(t *testing.T) {
	t.Parallel()

	th := theme.Dark
	none := controls.Controls{}

	bare := EstimateHeight("", th, none)
	titled := EstimateHeight("Demo", th, none)
	controlled := EstimateHeight("", th, controls.Default())

	if titled <= bare {
		t.Errorf("title did not increase height: %d <= %d", titled, bare)
	}
	if controlled <= bare {
		t.Errorf("controls did not increase height: %d <= %d", controlled, bare)
	}

	// 40 padding + 80 waveform + 8 margin
	if bare != 128 {
		t.Errorf("EstimateHeight(bare) = %d, want 128", bare)
	}
	if titled != 170 {
		t.Errorf("EstimateHeight(titled) = %d, want 170", titled)
	}
	if controlled != 182 {
		t.Errorf("EstimateHeight(controlled) = %d, want 182", controlled)
	}
}

func TestEstimateHeight_ThemeHeightFallback(t *testing.T) {
	t.Parallel()

	short := theme.Dark
	short.Height = 0

	tall := theme.Dark
	tall.Height = 160

	if got, want := EstimateHeight("", short, controls.Controls{}), 128; got != want {
		t.Errorf("fallback height = %d, want %d", got, want)
	}
	if got, want := EstimateHeight("", tall, controls.Controls{}), 208; got != want {
		t.Errorf("explicit height = %d, want %d", got, want)
	}
}

func TestNewID(t *testing.T) {
	t.Parallel()

	a := NewID()
	b := NewID()

	if a == b {
		t.Errorf("NewID() returned the same id twice: %s", a)
	}
	if len(a) != 12 {
		t.Errorf("NewID() length = %d, want 12", len(a))
	}
	if strings.Contains(a, "-") {
		t.Errorf("NewID() contains a dash: %s", a)
	}
}
