// SPDX-License-Identifier: EPL-2.0

// Package theme defines the visual themes applied to rendered players.
//
// A Theme controls both the wavesurfer.js appearance (colors, bars,
// height) and the surrounding chrome (background, border, padding, title
// style, button style, decorative patterns).  Themes are plain values —
// copy one and change fields to derive a variant; a shared instance is
// never mutated.
//
// Two built-in themes ship with the package:
//
//   - Dark  — minimal dark theme (the initial default)
//   - Light — clean light theme
//
// Custom themes are registered on the process-wide registry:
//
//	brand := theme.Dark
//	brand.WaveColor = "#ff0000"
//	theme.Register("my-brand", brand)
//	theme.Enable("my-brand")
//
// Code that needs isolation (tests, multi-tenant sessions) can construct
// its own Registry instead of using the package-level one.
package theme
