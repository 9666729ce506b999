// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audioinfo/audio"
)

// ErrUnknownFixture is returned by MockDecoder for content it has no stream for.
var ErrUnknownFixture = errors.New("unknown fixture")

// MockStream is a test helper that serves a fixed run of interleaved samples.
// It implements the audio.Stream interface.
type MockStream struct {
	info    audio.StreamInfo
	samples []int
	offset  int

	// FailAfter makes ReadSamples return Err once this many samples were
	// served. Negative disables it.
	FailAfter int
	Err       error

	closed bool
}

// NewMockStream creates a stream over samples. TotalSamples in info is used
// verbatim so tests can report a count that does not match the payload.
func NewMockStream(info audio.StreamInfo, samples []int) *MockStream {
	return &MockStream{
		info:      info,
		samples:   samples,
		FailAfter: -1,
	}
}

// NewWaveStream creates a stream of frames frames generated by waveform.
// waveform returns a sample value given sample index and channel.
func NewWaveStream(sampleRate, bitDepth, channels uint32, frames int, waveform func(sample int, channel int) int) *MockStream {
	samples := make([]int, frames*int(channels))
	for f := range frames {
		for ch := range int(channels) {
			samples[f*int(channels)+ch] = waveform(f, ch)
		}
	}

	return NewMockStream(audio.StreamInfo{
		SampleRate:   sampleRate,
		BitDepth:     bitDepth,
		Channels:     channels,
		TotalSamples: uint64(frames),
		Checksum:     make([]byte, 16),
	}, samples)
}

// NewSilentStream creates a stream of zero samples.
func NewSilentStream(sampleRate, bitDepth, channels uint32, frames int) *MockStream {
	return NewWaveStream(sampleRate, bitDepth, channels, frames, func(int, int) int { return 0 })
}

// NewConstantStream creates a stream where every sample equals value.
func NewConstantStream(sampleRate, bitDepth, channels uint32, frames int, value int) *MockStream {
	return NewWaveStream(sampleRate, bitDepth, channels, frames, func(int, int) int { return value })
}

// NewSineStream creates a full scale sine wave at frequency Hz.
func NewSineStream(sampleRate, bitDepth, channels uint32, frames int, frequency float64) *MockStream {
	peak := float64(int(1)<<(bitDepth-1) - 1)
	return NewWaveStream(sampleRate, bitDepth, channels, frames, func(sample int, _ int) int {
		t := float64(sample) / float64(sampleRate)
		return int(math.Round(peak * math.Sin(2*math.Pi*frequency*t)))
	})
}

// Samples returns the full payload the stream serves.
func (m *MockStream) Samples() []int { return m.samples }

// Closed reports whether Close was called.
func (m *MockStream) Closed() bool { return m.closed }

func (m *MockStream) Info() audio.StreamInfo { return m.info }
func (m *MockStream) BufSize() int           { return 4096 }
func (m *MockStream) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds the stream to allow re-reading
func (m *MockStream) Reset() {
	m.offset = 0
}

func (m *MockStream) ReadSamples(buf *goaudio.IntBuffer) (int, error) {
	if m.FailAfter >= 0 && m.offset >= m.FailAfter {
		return 0, m.Err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	end := min(m.offset+len(buf.Data), len(m.samples))
	if m.FailAfter >= 0 {
		end = min(end, m.FailAfter)
	}

	n := copy(buf.Data, m.samples[m.offset:end])
	m.offset += n

	return n, nil
}

// MockDecoder decodes fixture files by their content: the whole input is read
// and used as a key into Streams. It is safe for concurrent use.
type MockDecoder struct {
	mu      sync.Mutex
	streams map[string]func() *MockStream
	opened  []string
}

func NewMockDecoder() *MockDecoder {
	return &MockDecoder{streams: make(map[string]func() *MockStream)}
}

// Add registers the stream served for inputs equal to content.
func (d *MockDecoder) Add(content string, stream func() *MockStream) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.streams[content] = stream
}

// Opened lists the fixture contents decoded so far, in call order.
func (d *MockDecoder) Opened() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.opened...)
}

func (d *MockDecoder) Decode(r io.Reader) (audio.Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.opened = append(d.opened, string(data))
	newStream, ok := d.streams[string(data)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, data)
	}

	return newStream(), nil
}
