// SPDX-License-Identifier: EPL-2.0

package wavesurf

import (
	"fmt"
	"strings"

	"github.com/ik5/wavesurf/render"
)

// Compare lays out several players in a CSS grid inside a single
// iframe.  columns=1 stacks them vertically.  Each player is rendered
// with its own fresh identifier; the iframe is sized to the grid's
// estimated total height (rows of the tallest card).
func Compare(players []*Player, columns int) (string, error) {
	if columns < 1 {
		columns = 1
	}

	cards := make([]string, 0, len(players))
	maxCardHeight := 0

	for _, p := range players {
		spec, th, err := p.renderSpec()
		if err != nil {
			return "", err
		}

		card, err := render.Player(spec)
		if err != nil {
			return "", err
		}
		cards = append(cards, card)

		if h := render.EstimateHeight(p.Title, th, spec.Controls); h > maxCardHeight {
			maxCardHeight = h
		}
	}

	var gridStyle string
	var totalHeight int
	if columns > 1 {
		gridStyle = fmt.Sprintf(
			"display: grid; grid-template-columns: repeat(%d, 1fr); gap: 8px;",
			columns)
		rows := (len(cards) + columns - 1) / columns
		totalHeight = rows*maxCardHeight + 8
	} else {
		gridStyle = "display: grid; gap: 8px;"
		totalHeight = len(cards) * maxCardHeight
	}

	body := fmt.Sprintf(`<div style="%s">%s</div>`, gridStyle, strings.Join(cards, ""))
	return render.Iframe(body, totalHeight), nil
}

// Grid is Compare with a two-column default, for dashboard-style
// layouts.
func Grid(players []*Player) (string, error) {
	return Compare(players, 2)
}

// Labeled pairs an audio source with a display label for CompareAudio.
type Labeled struct {
	Label      string
	Audio      any
	SampleRate int
}

// CompareAudio renders one player per labeled source and arranges them
// with Compare.  It is the quick path for side-by-side listening tests;
// build the players yourself when they need individual themes or
// controls.
func CompareAudio(items []Labeled, columns int) (string, error) {
	players := make([]*Player, 0, len(items))
	for _, it := range items {
		p := New(it.Audio, it.SampleRate)
		p.Title = it.Label
		players = append(players, p)
	}
	return Compare(players, columns)
}
