// SPDX-License-Identifier: EPL-2.0

package wavesurf

import (
	"github.com/ik5/wavesurf/audio"
	"github.com/ik5/wavesurf/formats/aiff"
	"github.com/ik5/wavesurf/formats/mp3"
	"github.com/ik5/wavesurf/formats/vorbis"
	"github.com/ik5/wavesurf/formats/wav"
)

// defaultCodecs maps file extensions to the bundled format decoders.
var defaultCodecs = func() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}()

// DefaultCodecs returns the registry of bundled audio decoders, keyed by
// file extension.  Register additional decoders on it to extend the set
// of file types Player accepts.
func DefaultCodecs() *audio.Registry { return defaultCodecs }
