// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"strings"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// StreamInfo holds the facts a decoder reports about a stream before any
// sample is read.
type StreamInfo struct {
	// SampleRate of the PCM stream in Hz.
	SampleRate uint32
	// BitDepth is the number of bits per sample.
	BitDepth uint32
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels uint32
	// TotalSamples per channel. Zero when the encoder did not record it.
	TotalSamples uint64
	// Checksum precomputed by the encoder over the unencoded audio (MD5 for FLAC).
	Checksum []byte
}

type Stream interface {
	// Info returns the stream metadata.
	Info() StreamInfo
	// ReadSamples fills buf.Data with interleaved integer samples at the
	// stream's native bit depth. Returns number of values written (not frames).
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(buf *goaudio.IntBuffer) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Stream, error)
}

// Registry for decoders by file extension (e.g., "flac").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[ext] = d
}

// Get returns the decoder registered for ext. A leading dot is ignored, the
// match is otherwise exact.
func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.TrimPrefix(ext, ".")]
	return d, ok
}

// Formats lists the registered extensions in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		out = append(out, ext)
	}

	return out
}
