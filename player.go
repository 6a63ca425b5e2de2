// SPDX-License-Identifier: EPL-2.0

package wavesurf

import (
	"github.com/ik5/wavesurf/audio"
	"github.com/ik5/wavesurf/controls"
	"github.com/ik5/wavesurf/events"
	"github.com/ik5/wavesurf/options"
	"github.com/ik5/wavesurf/plugins"
	"github.com/ik5/wavesurf/render"
	"github.com/ik5/wavesurf/theme"
)

// Player describes one waveform player.  Zero values select sensible
// defaults: the registry's default theme, play button + time controls,
// the bundled codec registry.
type Player struct {
	// Audio is the source: a sample slice, audio.Samples, file path or
	// http(s) URL.  See audio.Resolve for the accepted types.
	Audio any
	// SampleRate is required for in-memory sample inputs and ignored
	// for files (native rate) and URLs (browser decodes).
	SampleRate int

	// Title is an optional label rendered above the waveform.
	Title string
	// Theme picks the look: a theme.Theme value, a registered
	// theme.Name, or nil for the registry default.
	Theme theme.Ref
	// Controls configures the control bar; nil means play + time.
	Controls *controls.Controls
	// Events are JS callbacks bound to player events.
	Events []events.Handler
	// Plugins are wavesurfer.js plugins registered on the player.
	Plugins []plugins.Config
	// Options are raw wavesurfer.js options in snake_case.  They
	// override whatever the theme sets.
	Options map[string]any

	// Themes overrides the theme registry; nil uses the process-wide
	// one.  Codecs overrides the decoder registry the same way.
	Themes *theme.Registry
	Codecs *audio.Registry
}

// New returns a Player for the given audio source.  sampleRate may be
// zero for file paths and URLs.
func New(source any, sampleRate int) *Player {
	return &Player{Audio: source, SampleRate: sampleRate}
}

// WithTitle returns a copy with the title set.
func (p Player) WithTitle(title string) *Player {
	p.Title = title
	return &p
}

// WithTheme returns a copy using the given theme reference.
func (p Player) WithTheme(ref theme.Ref) *Player {
	p.Theme = ref
	return &p
}

// WithControls returns a copy using the given control configuration.
func (p Player) WithControls(c controls.Controls) *Player {
	p.Controls = &c
	return &p
}

// WithOptions returns a copy with extra snake_case options merged over
// the existing ones.
func (p Player) WithOptions(opts map[string]any) *Player {
	merged := make(map[string]any, len(p.Options)+len(opts))
	for k, v := range p.Options {
		merged[k] = v
	}
	for k, v := range opts {
		merged[k] = v
	}
	p.Options = merged
	return &p
}

// WithEvents returns a copy with the handlers appended.
func (p Player) WithEvents(handlers ...events.Handler) *Player {
	p.Events = append(p.Events[:len(p.Events):len(p.Events)], handlers...)
	return &p
}

// WithPlugins returns a copy with the plugin configs appended.
func (p Player) WithPlugins(configs ...plugins.Config) *Player {
	p.Plugins = append(p.Plugins[:len(p.Plugins):len(p.Plugins)], configs...)
	return &p
}

// OnReady returns a copy that runs js once when the player is ready.
func (p Player) OnReady(js string) *Player {
	return p.WithEvents(events.Once(events.Ready, js))
}

func (p *Player) themeRegistry() *theme.Registry {
	if p.Themes != nil {
		return p.Themes
	}
	return theme.DefaultRegistry()
}

func (p *Player) codecRegistry() *audio.Registry {
	if p.Codecs != nil {
		return p.Codecs
	}
	return defaultCodecs
}

func (p *Player) effectiveControls() controls.Controls {
	if p.Controls != nil {
		return *p.Controls
	}
	return controls.Default()
}

// buildOptions merges the theme's waveform settings with the caller's
// overrides; the caller wins.
func (p *Player) buildOptions(th theme.Theme) options.Set {
	return options.FromOverrides(th.WaveformOverrides()).Merge(p.Options)
}

// renderSpec resolves the audio source and theme into a render.Spec
// with a fresh identifier.
func (p *Player) renderSpec() (render.Spec, theme.Theme, error) {
	th, err := p.themeRegistry().Resolve(p.Theme)
	if err != nil {
		return render.Spec{}, theme.Theme{}, err
	}

	url, _, err := audio.Resolve(p.codecRegistry(), p.Audio, p.SampleRate)
	if err != nil {
		return render.Spec{}, theme.Theme{}, err
	}

	return render.Spec{
		UID:      render.NewID(),
		URL:      url,
		Title:    p.Title,
		Theme:    th,
		Controls: p.effectiveControls(),
		Options:  p.buildOptions(th),
		Events:   p.Events,
		Plugins:  p.Plugins,
	}, th, nil
}

// ToHTML renders the player to a complete iframe-wrapped HTML string.
// Every call generates a fresh element-id namespace, so the same Player
// can be rendered into one document more than once.
func (p *Player) ToHTML() (string, error) {
	spec, th, err := p.renderSpec()
	if err != nil {
		return "", err
	}

	body, err := render.Player(spec)
	if err != nil {
		return "", err
	}

	height := render.EstimateHeight(p.Title, th, spec.Controls)
	return render.Iframe(body, height), nil
}

// MIMEBundle renders the player for a notebook rich-display hook,
// keyed by MIME type.
func (p *Player) MIMEBundle() (map[string]any, error) {
	html, err := p.ToHTML()
	if err != nil {
		return nil, err
	}
	return map[string]any{"text/html": html}, nil
}
