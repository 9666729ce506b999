// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bufio"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audioinfo/audio"
)

// frameReader is an interface for flac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source wraps a mewkiz/flac stream to implement audio.Stream
type source struct {
	dec  frameReader
	info audio.StreamInfo

	// decoded samples of the current frame, interleaved, not yet handed out
	pending []int
	off     int
}

func (s *source) Info() audio.StreamInfo { return s.info }
func (s *source) BufSize() int           { return 4096 * int(max(s.info.Channels, 1)) }
func (s *source) Close() error {
	if err := s.dec.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *source) ReadSamples(buf *goaudio.IntBuffer) (int, error) {
	if buf == nil || len(buf.Data) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(buf.Data) {
		if s.off >= len(s.pending) {
			if err := s.nextFrame(); err != nil {
				if n > 0 && err == io.EOF {
					return n, nil
				}
				return n, err
			}
			continue
		}

		c := copy(buf.Data[n:], s.pending[s.off:])
		s.off += c
		n += c
	}

	return n, nil
}

// nextFrame decodes one frame and interleaves its subframes into pending.
func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	channels := len(f.Subframes)
	if channels == 0 {
		s.pending, s.off = s.pending[:0], 0
		return nil
	}
	if uint32(channels) != s.info.Channels {
		return fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, channels, s.info.Channels)
	}

	frames := len(f.Subframes[0].Samples)
	total := frames * channels
	if cap(s.pending) < total {
		s.pending = make([]int, total)
	}
	s.pending = s.pending[:total]

	for ch, sub := range f.Subframes {
		for i := 0; i < frames && i < len(sub.Samples); i++ {
			s.pending[i*channels+ch] = int(sub.Samples[i])
		}
	}
	s.off = 0

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	// bufio.Reader is not an io.Closer, so closing the stream leaves r to the caller
	stream, err := flac.New(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	return newSource(stream, stream.Info.SampleRate, uint32(stream.Info.BitsPerSample),
		uint32(stream.Info.NChannels), stream.Info.NSamples, stream.Info.MD5sum[:]), nil
}

func newSource(dec frameReader, sampleRate, bitDepth, channels uint32, totalSamples uint64, md5sum []byte) *source {
	checksum := make([]byte, len(md5sum))
	copy(checksum, md5sum)

	return &source{
		dec: dec,
		info: audio.StreamInfo{
			SampleRate:   sampleRate,
			BitDepth:     bitDepth,
			Channels:     channels,
			TotalSamples: totalSamples,
			Checksum:     checksum,
		},
	}
}
