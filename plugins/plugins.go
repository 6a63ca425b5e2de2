// SPDX-License-Identifier: EPL-2.0

package plugins

import (
	"encoding/json"
	"fmt"
)

// Config registers one wavesurfer.js plugin on a player.
type Config struct {
	// Name is the plugin constructor as exposed by its bundle,
	// e.g. "Timeline", "Minimap", "Regions", "Spectrogram".
	Name string
	// Options is passed to the plugin's create() call.
	Options map[string]any
	// JSSource optionally carries the plugin bundle: either an
	// absolute URL or inline JavaScript.  When empty the constructor
	// must already exist in the page scope.
	JSSource string
}

// CreateExpr generates the Name.create({...}) registration expression.
func (c Config) CreateExpr() (string, error) {
	opts := "{}"
	if len(c.Options) > 0 {
		data, err := json.Marshal(c.Options)
		if err != nil {
			return "", fmt.Errorf("serializing %s plugin options: %w", c.Name, err)
		}
		opts = string(data)
	}
	return fmt.Sprintf("%s.create(%s)", c.Name, opts), nil
}

// TimelineOptions configures the Timeline plugin factory.  Zero fields
// are omitted from the create() call.
type TimelineOptions struct {
	Height                 int
	TimeInterval           float64
	PrimaryLabelInterval   int
	SecondaryLabelInterval int
	Style                  map[string]string
}

// Timeline builds a Timeline plugin registration.  A zero Height falls
// back to the upstream default of 20 pixels.
func Timeline(opts TimelineOptions) Config {
	height := opts.Height
	if height == 0 {
		height = 20
	}
	m := map[string]any{"height": height}
	if opts.TimeInterval != 0 {
		m["timeInterval"] = opts.TimeInterval
	}
	if opts.PrimaryLabelInterval != 0 {
		m["primaryLabelInterval"] = opts.PrimaryLabelInterval
	}
	if opts.SecondaryLabelInterval != 0 {
		m["secondaryLabelInterval"] = opts.SecondaryLabelInterval
	}
	if opts.Style != nil {
		m["style"] = opts.Style
	}
	return Config{Name: "Timeline", Options: m}
}

// MinimapOptions configures the Minimap plugin factory.
type MinimapOptions struct {
	Height        int
	WaveColor     any
	ProgressColor any
	Overlay       *bool // nil means the upstream default (true)
}

// Minimap builds a Minimap plugin registration.
func Minimap(opts MinimapOptions) Config {
	height := opts.Height
	if height == 0 {
		height = 20
	}
	overlay := true
	if opts.Overlay != nil {
		overlay = *opts.Overlay
	}
	m := map[string]any{"height": height, "overlay": overlay}
	if opts.WaveColor != nil {
		m["waveColor"] = opts.WaveColor
	}
	if opts.ProgressColor != nil {
		m["progressColor"] = opts.ProgressColor
	}
	return Config{Name: "Minimap", Options: m}
}

// Regions builds a Regions plugin registration with default options.
func Regions() Config {
	return Config{Name: "Regions"}
}

// SpectrogramOptions configures the Spectrogram plugin factory.
type SpectrogramOptions struct {
	Labels   *bool // nil means the upstream default (true)
	Height   int
	ColorMap string
}

// Spectrogram builds a Spectrogram plugin registration.
func Spectrogram(opts SpectrogramOptions) Config {
	labels := true
	if opts.Labels != nil {
		labels = *opts.Labels
	}
	height := opts.Height
	if height == 0 {
		height = 128
	}
	m := map[string]any{"labels": labels, "height": height}
	if opts.ColorMap != "" {
		m["colorMap"] = opts.ColorMap
	}
	return Config{Name: "Spectrogram", Options: m}
}
