// SPDX-License-Identifier: EPL-2.0

// Package options models the wavesurfer.js constructor options.
//
// Fields are expressed in snake_case internally and translated to the
// camelCase names the JavaScript library expects through an explicit
// name table.  Only fields that were actually set are serialized.
//
// The render_function field is special: its value is a raw JavaScript
// expression and must be spliced into the serialized object unquoted.
// SpliceRaw implements that single well-defined insertion point.
//
//	set := options.FromOverrides(map[string]any{"bar_width": 3})
//	js, _ := set.Serialize()
//	// js == `{"barWidth":3}`
package options
