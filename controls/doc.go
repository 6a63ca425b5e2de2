// SPDX-License-Identifier: EPL-2.0

// Package controls generates the interactive control bar for a player:
// play/pause button, elapsed/total time, volume slider, and playback
// rate selector.
//
// Controls describes which affordances appear; BarHTML emits the markup
// and WiringJS emits the statements binding each control to the player
// object's playback API.
package controls
