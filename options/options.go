// SPDX-License-Identifier: EPL-2.0

package options

import (
	"encoding/json"
	"fmt"
	"strings"
)

// WireNames is the explicit internal snake_case → camelCase wire name
// table.  It is not algorithmic, to handle edge cases like
// csp_nonce → cspNonce correctly.  Every Set field must have an entry
// here; the fallback in wireName exists only for safety and is treated
// as a bug when exercised.
var WireNames = map[string]string{
	"audio_rate":      "audioRate",
	"auto_center":     "autoCenter",
	"auto_scroll":     "autoScroll",
	"autoplay":        "autoplay",
	"backend":         "backend",
	"bar_align":       "barAlign",
	"bar_gap":         "barGap",
	"bar_height":      "barHeight",
	"bar_min_height":  "barMinHeight",
	"bar_radius":      "barRadius",
	"bar_width":       "barWidth",
	"blob_mime_type":  "blobMimeType",
	"container":       "container",
	"csp_nonce":       "cspNonce",
	"cursor_color":    "cursorColor",
	"cursor_width":    "cursorWidth",
	"drag_to_seek":    "dragToSeek",
	"duration":        "duration",
	"fetch_params":    "fetchParams",
	"fill_parent":     "fillParent",
	"height":          "height",
	"hide_scrollbar":  "hideScrollbar",
	"interact":        "interact",
	"media_controls":  "mediaControls",
	"max_peak":        "maxPeak",
	"min_px_per_sec":  "minPxPerSec",
	"normalize":       "normalize",
	"progress_color":  "progressColor",
	"render_function": "renderFunction",
	"sample_rate":     "sampleRate",
	"split_channels":  "splitChannels",
	"url":             "url",
	"wave_color":      "waveColor",
	"width":           "width",
}

// Set holds wavesurfer.js constructor options.  Unset fields are nil and
// never serialized.  The container option is intentionally absent — the
// render pipeline always sets it to the per-player mount selector.
//
// Fields whose JS type is a union (string or list, bool or object, ...)
// are typed any and passed through to JSON encoding as-is.
type Set struct {
	AudioRate      *float64
	AutoCenter     *bool
	AutoScroll     *bool
	Autoplay       *bool
	Backend        *string
	BarAlign       *string
	BarGap         *int
	BarHeight      *float64
	BarMinHeight   *int
	BarRadius      *int
	BarWidth       *int
	BlobMimeType   *string
	CSPNonce       *string
	CursorColor    *string
	CursorWidth    *int
	DragToSeek     any
	Duration       *float64
	FetchParams    map[string]any
	FillParent     *bool
	Height         any
	HideScrollbar  *bool
	Interact       *bool
	MediaControls  *bool
	MaxPeak        *float64
	MinPxPerSec    *int
	Normalize      *bool
	ProgressColor  any
	RenderFunction *string // raw JS expression, never quoted
	SampleRate     *int
	SplitChannels  []map[string]any
	URL            *string
	WaveColor      any
	Width          any
}

// field binds an internal option name to its accessor pair.
type field struct {
	name string
	get  func(*Set) (any, bool)
	set  func(*Set, any)
}

func ptrField[T any](name string, get func(*Set) **T, conv func(any) (T, bool)) field {
	return field{
		name: name,
		get: func(s *Set) (any, bool) {
			p := *get(s)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		set: func(s *Set, v any) {
			if c, ok := conv(v); ok {
				*get(s) = &c
			}
		},
	}
}

func anyField(name string, get func(*Set) *any) field {
	return field{
		name: name,
		get: func(s *Set) (any, bool) {
			v := *get(s)
			return v, v != nil
		},
		set: func(s *Set, v any) { *get(s) = v },
	}
}

func intArg(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func floatArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func boolArg(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func stringArg(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func mapArg(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func splitArg(v any) ([]map[string]any, bool) {
	l, ok := v.([]map[string]any)
	return l, ok
}

// setFields enumerates every option field in wire order.
var setFields = []field{
	ptrField("audio_rate", func(s *Set) **float64 { return &s.AudioRate }, floatArg),
	ptrField("auto_center", func(s *Set) **bool { return &s.AutoCenter }, boolArg),
	ptrField("auto_scroll", func(s *Set) **bool { return &s.AutoScroll }, boolArg),
	ptrField("autoplay", func(s *Set) **bool { return &s.Autoplay }, boolArg),
	ptrField("backend", func(s *Set) **string { return &s.Backend }, stringArg),
	ptrField("bar_align", func(s *Set) **string { return &s.BarAlign }, stringArg),
	ptrField("bar_gap", func(s *Set) **int { return &s.BarGap }, intArg),
	ptrField("bar_height", func(s *Set) **float64 { return &s.BarHeight }, floatArg),
	ptrField("bar_min_height", func(s *Set) **int { return &s.BarMinHeight }, intArg),
	ptrField("bar_radius", func(s *Set) **int { return &s.BarRadius }, intArg),
	ptrField("bar_width", func(s *Set) **int { return &s.BarWidth }, intArg),
	ptrField("blob_mime_type", func(s *Set) **string { return &s.BlobMimeType }, stringArg),
	ptrField("csp_nonce", func(s *Set) **string { return &s.CSPNonce }, stringArg),
	ptrField("cursor_color", func(s *Set) **string { return &s.CursorColor }, stringArg),
	ptrField("cursor_width", func(s *Set) **int { return &s.CursorWidth }, intArg),
	anyField("drag_to_seek", func(s *Set) *any { return &s.DragToSeek }),
	ptrField("duration", func(s *Set) **float64 { return &s.Duration }, floatArg),
	{
		name: "fetch_params",
		get: func(s *Set) (any, bool) {
			if s.FetchParams == nil {
				return nil, false
			}
			return s.FetchParams, true
		},
		set: func(s *Set, v any) {
			if m, ok := mapArg(v); ok {
				s.FetchParams = m
			}
		},
	},
	ptrField("fill_parent", func(s *Set) **bool { return &s.FillParent }, boolArg),
	anyField("height", func(s *Set) *any { return &s.Height }),
	ptrField("hide_scrollbar", func(s *Set) **bool { return &s.HideScrollbar }, boolArg),
	ptrField("interact", func(s *Set) **bool { return &s.Interact }, boolArg),
	ptrField("media_controls", func(s *Set) **bool { return &s.MediaControls }, boolArg),
	ptrField("max_peak", func(s *Set) **float64 { return &s.MaxPeak }, floatArg),
	ptrField("min_px_per_sec", func(s *Set) **int { return &s.MinPxPerSec }, intArg),
	ptrField("normalize", func(s *Set) **bool { return &s.Normalize }, boolArg),
	anyField("progress_color", func(s *Set) *any { return &s.ProgressColor }),
	ptrField("render_function", func(s *Set) **string { return &s.RenderFunction }, stringArg),
	ptrField("sample_rate", func(s *Set) **int { return &s.SampleRate }, intArg),
	{
		name: "split_channels",
		get: func(s *Set) (any, bool) {
			if s.SplitChannels == nil {
				return nil, false
			}
			return s.SplitChannels, true
		},
		set: func(s *Set, v any) {
			if l, ok := splitArg(v); ok {
				s.SplitChannels = l
			}
		},
	},
	ptrField("url", func(s *Set) **string { return &s.URL }, stringArg),
	anyField("wave_color", func(s *Set) *any { return &s.WaveColor }),
	anyField("width", func(s *Set) *any { return &s.Width }),
}

// wireName translates an internal name to its wire name.  Falling back to
// the internal name keeps serialization going for an unmapped field, but
// the table is required to be exhaustive and the fallback is covered by
// tests as a misconfiguration check.
func wireName(name string) string {
	if w, ok := WireNames[name]; ok {
		return w
	}
	return name
}

// FromOverrides builds a Set from snake_case keyed values.  Unknown keys
// and values of an unusable type are ignored.
func FromOverrides(overrides map[string]any) Set {
	var s Set
	s.apply(overrides)
	return s
}

// Merge returns a copy of s with overrides applied on top.  Unknown keys
// are ignored, matching FromOverrides.
func (s Set) Merge(overrides map[string]any) Set {
	out := s
	out.apply(overrides)
	return out
}

func (s *Set) apply(overrides map[string]any) {
	for i := range setFields {
		if v, ok := overrides[setFields[i].name]; ok {
			setFields[i].set(s, v)
		}
	}
}

// WireRecord returns the wire-named values of every set field.  The
// render_function field is excluded; it re-enters during Serialize as a
// raw splice so it is never quoted.
func (s *Set) WireRecord() map[string]any {
	rec := make(map[string]any)
	for i := range setFields {
		f := &setFields[i]
		if f.name == "render_function" {
			continue
		}
		if v, ok := f.get(s); ok {
			rec[wireName(f.name)] = v
		}
	}
	return rec
}

// Serialize encodes the wire record as a JS-embeddable JSON object.  When
// render_function is set, its value is spliced in unquoted.
func (s *Set) Serialize() (string, error) {
	data, err := json.Marshal(s.WireRecord())
	if err != nil {
		return "", fmt.Errorf("serializing options: %w", err)
	}
	out := string(data)
	if s.RenderFunction != nil {
		out = SpliceRaw(out, wireName("render_function"), *s.RenderFunction)
	}
	return out, nil
}

// SpliceRaw inserts key with a raw, unquoted value just before the
// closing brace of a serialized JSON object.  No quoting-aware encoder
// can emit "JSON except one field is literal code", so the insertion is
// done textually in exactly one place.
func SpliceRaw(obj, key, raw string) string {
	body := strings.TrimSuffix(obj, "}")
	entry := fmt.Sprintf("%q: %s", key, raw)
	if strings.TrimSpace(strings.TrimPrefix(body, "{")) == "" {
		return "{" + entry + "}"
	}
	return body + ", " + entry + "}"
}
