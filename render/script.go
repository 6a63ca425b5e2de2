// SPDX-License-Identifier: EPL-2.0

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ik5/wavesurf/options"
)

// playerScript generates the IIFE that constructs the player and wires
// plugins, events, and controls to it.
func playerScript(spec Spec, wiring string) (string, error) {
	rec := spec.Options.WireRecord()
	// The mount selector and resolved source always win.
	rec["container"] = "#waveform-" + spec.UID
	rec["url"] = spec.URL
	// Stability defaults, overridable by explicit options.
	if _, ok := rec["hideScrollbar"]; !ok {
		rec["hideScrollbar"] = true
	}
	if _, ok := rec["cursorWidth"]; !ok {
		rec["cursorWidth"] = 2
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("serializing player options: %w", err)
	}
	optsJSON := string(data)
	if spec.Options.RenderFunction != nil {
		optsJSON = options.SpliceRaw(optsJSON, "renderFunction", *spec.Options.RenderFunction)
	}

	lines := []string{
		"(function() {",
		fmt.Sprintf("  var ws = WaveSurfer.create(%s);", optsJSON),
	}

	for _, p := range spec.Plugins {
		expr, err := p.CreateExpr()
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("  ws.registerPlugin(%s);", expr))
	}

	for _, h := range spec.Events {
		lines = append(lines, "  "+h.Binding("ws"))
	}

	if wiring != "" {
		for _, l := range strings.Split(wiring, "\n") {
			lines = append(lines, "  "+l)
		}
	}

	lines = append(lines, "})();")
	return strings.Join(lines, "\n"), nil
}
