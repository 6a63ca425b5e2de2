// SPDX-License-Identifier: EPL-2.0

// Package render turns a fully resolved player description into
// embeddable HTML.
//
// Player produces the card markup plus the script block that constructs
// the wavesurfer.js instance, registers plugins, binds event handlers,
// and wires the controls.  Iframe wraps that fragment in a srcdoc
// sub-document: notebook front ends strip inline <script> tags from
// displayed HTML, so execution has to happen inside a separately
// rendered document.  The wavesurfer.js bundle is embedded inline so the
// sub-document needs no network access.
//
// All user-supplied text destined for HTML context is escaped here,
// centrally, before it reaches the output.
package render

//go:generate go run github.com/ik5/wavesurf/scripts/syncbundle -version 7.8.6 -out .
