// SPDX-License-Identifier: EPL-2.0

package events

import (
	"fmt"
	"sort"
	"strings"
)

// Event is a wavesurfer.js event name.
type Event string

// The full wavesurfer.js event set.
const (
	Audioprocess   Event = "audioprocess"
	Click          Event = "click"
	Dblclick       Event = "dblclick"
	Decode         Event = "decode"
	Destroy        Event = "destroy"
	Drag           Event = "drag"
	Dragend        Event = "dragend"
	Dragstart      Event = "dragstart"
	Error          Event = "error"
	Finish         Event = "finish"
	Init           Event = "init"
	Interaction    Event = "interaction"
	Load           Event = "load"
	Loading        Event = "loading"
	Pause          Event = "pause"
	Play           Event = "play"
	Ready          Event = "ready"
	Redraw         Event = "redraw"
	Redrawcomplete Event = "redrawcomplete"
	Resize         Event = "resize"
	Scroll         Event = "scroll"
	Seeking        Event = "seeking"
	Timeupdate     Event = "timeupdate"
	Zoom           Event = "zoom"
)

// eventParams maps each event to the ordered callback parameter names
// wavesurfer.js passes.  Changing an entry changes the generated
// callback signature, so the table must track the upstream API exactly.
var eventParams = map[Event][]string{
	Audioprocess:   {"currentTime"},
	Click:          {"relativeX", "relativeY"},
	Dblclick:       {"relativeX", "relativeY"},
	Decode:         {"duration"},
	Destroy:        {},
	Drag:           {"relativeX"},
	Dragend:        {"relativeX"},
	Dragstart:      {"relativeX"},
	Error:          {"error"},
	Finish:         {},
	Init:           {},
	Interaction:    {"newTime"},
	Load:           {"url"},
	Loading:        {"percent"},
	Pause:          {},
	Play:           {},
	Ready:          {"duration"},
	Redraw:         {},
	Redrawcomplete: {},
	Resize:         {},
	Scroll:         {"visibleStartTime", "visibleEndTime", "scrollLeft", "scrollRight"},
	Seeking:        {"currentTime"},
	Timeupdate:     {"currentTime"},
	Zoom:           {"minPxPerSec"},
}

// Params returns the ordered callback parameter names for an event.
// Unknown events yield an empty list.
func Params(e Event) []string {
	return eventParams[e]
}

// All returns every known event, sorted by name.
func All() []Event {
	out := make([]Event, 0, len(eventParams))
	for e := range eventParams {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Handler attaches a JavaScript callback body to a single event.
type Handler struct {
	Event Event
	JS    string // raw JavaScript statements forming the callback body
	Once  bool   // bind with once() instead of on()
}

// On builds a handler bound with ws.on().
func On(e Event, js string) Handler {
	return Handler{Event: e, JS: js}
}

// Once builds a handler bound with ws.once().
func Once(e Event, js string) Handler {
	return Handler{Event: e, JS: js, Once: true}
}

// Binding generates the event-binding statement against the named player
// variable.
func (h Handler) Binding(wsVar string) string {
	method := "on"
	if h.Once {
		method = "once"
	}
	params := strings.Join(Params(h.Event), ", ")
	return fmt.Sprintf("%s.%s(%q, function(%s) { %s });", wsVar, method, h.Event, params, h.JS)
}
