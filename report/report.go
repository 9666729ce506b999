// SPDX-License-Identifier: EPL-2.0

package report

import (
	"github.com/ik5/audioinfo/duration"
)

const (
	FormatTag     = "audioinfo"
	FormatVersion = 0
	Generator     = "audioinfo"
)

// Nominal CD quality baseline shown in every summary. These are not derived
// from the scanned files.
const (
	NominalSampleRate = 44100
	NominalBitDepth   = 16
	NominalChannels   = 2
)

// AudioReport is the result of one scan.
type AudioReport struct {
	FormatTag     string
	FormatVersion int
	Generator     string
	Summary       Summary
	// Files in traversal order.
	Files []FileRecord
}

type Summary struct {
	TotalFiles    int
	TotalDuration string
	SampleRate    int
	BitDepth      int
	Channels      int
}

// FileRecord describes one decoded file.
type FileRecord struct {
	FileName     string
	Duration     string
	TotalSamples uint64
	SampleRate   uint32
	BitDepth     uint32
	Channels     uint32
	PeakLevel    float64
	RMSdBLevel   float64
	CRC32        string
	MD5          string
}

// New builds the report for files. The total duration is the sum of the
// formatted per-file durations, so it carries their centisecond rounding.
func New(files []FileRecord) *AudioReport {
	durations := make([]string, len(files))
	for i, f := range files {
		durations[i] = f.Duration
	}

	return &AudioReport{
		FormatTag:     FormatTag,
		FormatVersion: FormatVersion,
		Generator:     Generator,
		Summary: Summary{
			TotalFiles:    len(files),
			TotalDuration: duration.Sum(durations...),
			SampleRate:    NominalSampleRate,
			BitDepth:      NominalBitDepth,
			Channels:      NominalChannels,
		},
		Files: files,
	}
}
