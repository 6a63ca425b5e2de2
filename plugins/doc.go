// SPDX-License-Identifier: EPL-2.0

// Package plugins describes wavesurfer.js plugin registrations.
//
// A Config pairs a plugin constructor name with the options passed to
// its create() call, plus an optional JavaScript source for the plugin
// bundle.  Factories cover the common plugins:
//
//	p := plugins.Timeline(plugins.TimelineOptions{Height: 24})
//	p.CreateExpr()
//	// Timeline.create({"height":24})
package plugins
