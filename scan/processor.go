// SPDX-License-Identifier: EPL-2.0

package scan

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audioinfo/audio"
	"github.com/ik5/audioinfo/checksum"
	"github.com/ik5/audioinfo/duration"
	"github.com/ik5/audioinfo/level"
	"github.com/ik5/audioinfo/report"
)

// Processor turns one audio file into a report.FileRecord.
type Processor struct {
	decoder audio.Decoder
	logger  *slog.Logger
}

// NewProcessor returns a Processor decoding with dec. A nil logger uses slog.Default().
func NewProcessor(dec audio.Decoder, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Processor{
		decoder: dec,
		logger:  logger,
	}
}

// Process decodes the file at path and measures it. Either a complete record
// or an error is returned, never both.
func (p *Processor) Process(path string) (report.FileRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}
	defer f.Close()

	stream, err := p.decoder.Decode(f)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrStreamOpen, path, err)
	}
	defer stream.Close()

	return p.measure(filepath.Base(path), stream)
}

func (p *Processor) measure(name string, stream audio.Stream) (report.FileRecord, error) {
	info := stream.Info()

	if info.TotalSamples == 0 {
		return report.FileRecord{}, fmt.Errorf("%w: %s", ErrMissingSampleCount, name)
	}

	meter, err := level.NewMeter(info.BitDepth)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("%s: %w", name, err)
	}
	crc, err := checksum.New(info.BitDepth)
	if err != nil {
		return report.FileRecord{}, fmt.Errorf("%s: %w", name, err)
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(info.Channels),
			SampleRate:  int(info.SampleRate),
		},
		Data:           make([]int, max(stream.BufSize(), 1)),
		SourceBitDepth: int(info.BitDepth),
	}

	for {
		n, err := stream.ReadSamples(buf)
		if n > 0 {
			meter.Write(buf.Data[:n])
			crc.Write(buf.Data[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return report.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrStreamDecode, name, err)
		}
		if n == 0 {
			return report.FileRecord{}, fmt.Errorf("%w: %s: %w", ErrStreamDecode, name, io.ErrNoProgress)
		}
	}

	p.logger.Debug("decoded stream",
		slog.String("file", name),
		slog.Uint64("samples_read", meter.Count()),
		slog.Uint64("total_samples", info.TotalSamples),
		slog.Uint64("channels", uint64(info.Channels)))

	return report.FileRecord{
		FileName:     name,
		Duration:     duration.FromSamples(info.TotalSamples, info.SampleRate),
		TotalSamples: info.TotalSamples,
		SampleRate:   info.SampleRate,
		BitDepth:     info.BitDepth,
		Channels:     info.Channels,
		PeakLevel:    meter.Peak(),
		RMSdBLevel:   meter.RMSdB(),
		CRC32:        crc.String(),
		MD5:          hex.EncodeToString(info.Checksum),
	}, nil
}
