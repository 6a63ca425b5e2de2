// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/wavesurf/utils"
)

// Resolve turns an audio input into an embeddable source URL and the
// sample rate it plays at.
//
// In-memory inputs ([]float32, []float64, []int16, Samples) require a
// positive sampleRate.  http(s) URLs pass through unchanged and keep
// whatever sampleRate was given (possibly zero — the browser decodes).
// File paths are decoded through reg and return the file's native rate.
func Resolve(reg *Registry, input any, sampleRate int) (string, int, error) {
	switch v := input.(type) {
	case []float32:
		return resolveSamples(v, sampleRate)
	case []float64:
		return resolveSamples(utils.Float64sToFloat32(v), sampleRate)
	case []int16:
		if sampleRate <= 0 {
			return "", 0, fmt.Errorf("%w for []int16 input", ErrSampleRateRequired)
		}
		url, err := pcm16DataURL(v, sampleRate)
		if err != nil {
			return "", 0, err
		}
		return url, sampleRate, nil
	case Samples:
		return resolveSamples(v.Float32s(), sampleRate)
	case string:
		if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
			return v, sampleRate, nil
		}
		return resolveFile(reg, v)
	default:
		return "", 0, fmt.Errorf("%w: %T (want sample slice, Samples, file path, or URL)",
			ErrUnsupportedAudio, input)
	}
}

func resolveSamples(samples []float32, sampleRate int) (string, int, error) {
	if sampleRate <= 0 {
		return "", 0, fmt.Errorf("%w for in-memory samples", ErrSampleRateRequired)
	}
	url, err := DataURL(samples, sampleRate, 1)
	if err != nil {
		return "", 0, err
	}
	return url, sampleRate, nil
}

func pcm16DataURL(samples []int16, sampleRate int) (string, error) {
	floats := make([]float32, len(samples))
	for i, s := range samples {
		floats[i] = float32(s) / 32767.0
	}
	return DataURL(floats, sampleRate, 1)
}

func resolveFile(reg *Registry, path string) (string, int, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := reg.Get(ext)
	if !ok {
		return "", 0, fmt.Errorf("%w %q for %q (supported: %s)",
			ErrUnknownFormat, ext, path, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return "", 0, fmt.Errorf("decoding %q: %w", path, err)
	}
	defer src.Close()

	samples, err := Collect(src)
	if err != nil {
		return "", 0, fmt.Errorf("decoding %q: %w", path, err)
	}

	url, err := DataURL(samples, src.SampleRate(), src.Channels())
	if err != nil {
		return "", 0, err
	}
	return url, src.SampleRate(), nil
}
