// SPDX-License-Identifier: EPL-2.0

// Package audio resolves a player's audio input into an embeddable
// source URL.
//
// Four input kinds are supported:
//
//   - in-memory sample slices ([]float32, []float64, []int16) plus an
//     explicit sample rate → base64 WAV data URL
//   - Samples implementations (DSP buffers, tensor-style holders) plus
//     an explicit sample rate → base64 WAV data URL
//   - file paths → decoded through the extension-keyed decoder Registry
//     and re-encoded as a data URL at the file's native sample rate
//   - http(s) URLs → passed through untouched, nothing is decoded
//
// Decoders for the supported container formats live in the formats
// subpackages and are registered by the caller:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	url, rate, err := audio.Resolve(reg, "clip.wav", 0)
package audio
