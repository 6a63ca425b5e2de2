// SPDX-License-Identifier: EPL-2.0

// Package wavesurf renders interactive audio waveform players as
// self-contained HTML for notebook and web embedding.
//
// A Player combines an audio source, a visual theme, a control bar,
// event handlers and wavesurfer.js plugins, and renders everything into
// one iframe whose sub-document carries the player library inline, so
// the result needs no network access and survives hosts that strip
// inline scripts.
//
// # Audio Sources
//
// Player accepts several audio inputs:
//   - []float32, []float64, []int16 sample slices (sample rate required)
//   - any value implementing audio.Samples
//   - a local file path, decoded via formats/wav, formats/mp3,
//     formats/vorbis or formats/aiff
//   - an http(s) URL, passed through for the browser to decode
//
// # Quick Start
//
//	samples := loadSamples() // []float32
//	p := wavesurf.New(samples, 24000)
//	p.Title = "Take 3"
//	p.Theme = theme.Name("light")
//
//	html, err := p.ToHTML()
//
// # Themes
//
// Themes are looked up in a process-wide registry preloaded with "dark"
// (the default) and "light".  Register custom themes with
// theme.Register and switch the default with theme.Enable.
//
// # Layouts
//
// Compare and Grid arrange several players in a CSS grid inside a
// single iframe, for side-by-side listening tests.
package wavesurf
