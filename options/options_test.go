// SPDX-License-Identifier: EPL-2.0

package options

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWireNames_Exhaustive(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := range setFields {
		name := setFields[i].name
		if seen[name] {
			t.Errorf("duplicate field definition for %q", name)
		}
		seen[name] = true

		if _, ok := WireNames[name]; !ok {
			t.Errorf("field %q has no wire name entry", name)
		}
	}

	// Every table entry maps a real field, except container which is
	// always injected by the render pipeline.
	for name := range WireNames {
		if name == "container" {
			continue
		}
		if !seen[name] {
			t.Errorf("wire name table entry %q has no matching field", name)
		}
	}

	// Wire names must be unique, otherwise two fields would collide in
	// the serialized object.
	wires := make(map[string]string)
	for name, wire := range WireNames {
		if prev, ok := wires[wire]; ok {
			t.Errorf("wire name %q mapped by both %q and %q", wire, prev, name)
		}
		wires[wire] = name
	}
}

func TestWireRecord_OmitsUnsetFields(t *testing.T) {
	t.Parallel()

	var s Set
	if rec := s.WireRecord(); len(rec) != 0 {
		t.Errorf("WireRecord() of zero Set = %v, want empty", rec)
	}

	s = FromOverrides(map[string]any{
		"bar_width":    5,
		"wave_color":   "#8888aa",
		"normalize":    true,
		"audio_rate":   1.5,
		"unknown_key":  "dropped",
		"another_junk": 42,
	})

	rec := s.WireRecord()
	want := map[string]any{
		"barWidth":  5,
		"waveColor": "#8888aa",
		"normalize": true,
		"audioRate": 1.5,
	}
	if len(rec) != len(want) {
		t.Fatalf("WireRecord() has %d entries, want %d: %v", len(rec), len(want), rec)
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("WireRecord()[%q] = %v, want %v", k, rec[k], v)
		}
	}
}

func TestWireRecord_ExcludesRenderFunction(t *testing.T) {
	t.Parallel()

	s := FromOverrides(map[string]any{
		"render_function": "(channels, ctx) => { ctx.fillRect(0, 0, 1, 1); }",
		"bar_width":       2,
	})

	rec := s.WireRecord()
	if _, ok := rec["renderFunction"]; ok {
		t.Error("WireRecord() must not contain renderFunction")
	}
	if _, ok := rec["barWidth"]; !ok {
		t.Error("WireRecord() lost barWidth")
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	s := FromOverrides(map[string]any{"bar_width": 5})
	out, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Serialize() produced invalid JSON %q: %v", out, err)
	}
	if got := decoded["barWidth"]; got != float64(5) {
		t.Errorf("decoded barWidth = %v, want 5", got)
	}
}

func TestSerialize_RawRenderFunction(t *testing.T) {
	t.Parallel()

	fn := "(peaks, ctx) => { ctx.stroke(); }"
	s := FromOverrides(map[string]any{
		"render_function": fn,
		"cursor_width":    2,
	})

	out, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	if !strings.Contains(out, `"renderFunction": `+fn) {
		t.Errorf("Serialize() = %q, want raw render function splice", out)
	}
	if strings.Contains(out, `"renderFunction": "`) {
		t.Errorf("Serialize() quoted the render function: %q", out)
	}
	if !strings.HasSuffix(out, "}") {
		t.Errorf("Serialize() = %q, want object closed after splice", out)
	}
}

func TestSerialize_RenderFunctionOnly(t *testing.T) {
	t.Parallel()

	fn := "() => {}"
	s := FromOverrides(map[string]any{"render_function": fn})

	out, err := s.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	want := `{"renderFunction": ` + fn + `}`
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		base      map[string]any
		overrides map[string]any
		wantKey   string
		wantValue any
	}{
		{
			name:      "override replaces base",
			base:      map[string]any{"bar_width": 2},
			overrides: map[string]any{"bar_width": 7},
			wantKey:   "barWidth",
			wantValue: 7,
		},
		{
			name:      "override adds new field",
			base:      map[string]any{"bar_width": 2},
			overrides: map[string]any{"cursor_color": "#fff"},
			wantKey:   "cursorColor",
			wantValue: "#fff",
		},
		{
			name:      "unknown override key ignored",
			base:      map[string]any{"bar_width": 2},
			overrides: map[string]any{"no_such_option": 1},
			wantKey:   "barWidth",
			wantValue: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := FromOverrides(tt.base)
			merged := base.Merge(tt.overrides)

			rec := merged.WireRecord()
			if got := rec[tt.wantKey]; got != tt.wantValue {
				t.Errorf("merged[%q] = %v, want %v", tt.wantKey, got, tt.wantValue)
			}
		})
	}
}

func TestMerge_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := FromOverrides(map[string]any{"bar_width": 2})
	_ = base.Merge(map[string]any{"bar_width": 9})

	if got := base.WireRecord()["barWidth"]; got != 2 {
		t.Errorf("Merge() mutated receiver: barWidth = %v, want 2", got)
	}
}

func TestFromOverrides_IgnoresWrongTypes(t *testing.T) {
	t.Parallel()

	s := FromOverrides(map[string]any{
		"bar_width":  "not a number",
		"normalize":  "not a bool",
		"bar_radius": 3,
	})

	rec := s.WireRecord()
	if _, ok := rec["barWidth"]; ok {
		t.Error("bar_width with string value should be ignored")
	}
	if _, ok := rec["normalize"]; ok {
		t.Error("normalize with string value should be ignored")
	}
	if rec["barRadius"] != 3 {
		t.Errorf("barRadius = %v, want 3", rec["barRadius"])
	}
}

func TestSpliceRaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		obj  string
		key  string
		raw  string
		want string
	}{
		{
			name: "empty object",
			obj:  "{}",
			key:  "fn",
			raw:  "() => 1",
			want: `{"fn": () => 1}`,
		},
		{
			name: "populated object",
			obj:  `{"a":1}`,
			key:  "fn",
			raw:  "x => x",
			want: `{"a":1, "fn": x => x}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SpliceRaw(tt.obj, tt.key, tt.raw); got != tt.want {
				t.Errorf("SpliceRaw(%q, %q, %q) = %q, want %q",
					tt.obj, tt.key, tt.raw, got, tt.want)
			}
		})
	}
}
