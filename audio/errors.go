// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrSampleRateRequired marks in-memory audio passed without a
	// sample rate; there is nothing to derive one from.
	ErrSampleRateRequired = errors.New("sample rate required")
	// ErrUnsupportedAudio marks an input of a type Resolve cannot
	// handle.
	ErrUnsupportedAudio = errors.New("unsupported audio input")
	// ErrUnknownFormat marks a file whose extension has no registered
	// decoder.
	ErrUnknownFormat = errors.New("unknown audio format")
)
