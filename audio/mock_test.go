package audio

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// mockStream is a test helper that generates integer samples for testing.
// It implements the Stream interface.
type mockStream struct {
	info      StreamInfo
	generated int // frames generated so far
	waveform  func(sample int, channel int) int
}

// newMockStream creates a new mock stream of frames frames.
// waveform is a function that generates sample values given sample index and channel.
func newMockStream(sampleRate, bitDepth, channels uint32, frames int, waveform func(sample int, channel int) int) *mockStream {
	return &mockStream{
		info: StreamInfo{
			SampleRate:   sampleRate,
			BitDepth:     bitDepth,
			Channels:     channels,
			TotalSamples: uint64(frames),
		},
		waveform: waveform,
	}
}

// newSilentStream creates a mock stream that generates silence (all zeros).
func newSilentStream(sampleRate, bitDepth, channels uint32, frames int) *mockStream {
	return newMockStream(sampleRate, bitDepth, channels, frames, func(sample int, channel int) int {
		return 0
	})
}

func (m *mockStream) Info() StreamInfo { return m.info }
func (m *mockStream) BufSize() int     { return 4096 }
func (m *mockStream) Close() error     { return nil }

func (m *mockStream) ReadSamples(buf *goaudio.IntBuffer) (int, error) {
	total := int(m.info.TotalSamples)
	channels := int(m.info.Channels)

	if m.generated >= total {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesToWrite := min(len(buf.Data)/channels, total-m.generated)

	for frame := range framesToWrite {
		for ch := range channels {
			buf.Data[frame*channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * channels

	if m.generated >= total {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
