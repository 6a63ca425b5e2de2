// SPDX-License-Identifier: EPL-2.0

// Package events declares the wavesurfer.js event set and generates the
// JavaScript binding statements for user callbacks.
//
// Each event carries a fixed, ordered list of callback parameter names.
// That table is part of the wire contract with wavesurfer.js: the
// generated callback signature must match what the library invokes.
//
//	h := events.On(events.Ready, "console.log('duration', duration);")
//	h.Binding("ws")
//	// ws.on("ready", function(duration) { console.log('duration', duration); });
package events
