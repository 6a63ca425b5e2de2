// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files for audio-source resolution.
//
// It uses github.com/go-audio/wav for container parsing and exposes the
// result as an audio.Source of interleaved float32 samples.
package wav
