// SPDX-License-Identifier: EPL-2.0

// Package level measures peak and RMS loudness of integer PCM.
//
// Both measurements are taken over the whole interleaved sample run of a
// file, channels are not separated. Samples are normalized by the largest
// positive value of the bit depth (32767 for 16-bit, 2^23-1 for 24-bit).
//
// RMS is reported as an amplitude ratio in dB (20*log10), so a full-scale
// square wave sits at 0 dB and silence at -Inf.
package level

import (
	"fmt"
	"math"

	"github.com/ik5/audioinfo/audio"
	"github.com/ik5/audioinfo/utils"
)

// Meter accumulates peak and RMS over samples written in any number of
// chunks. The result only depends on the samples, not on how they were split.
type Meter struct {
	bitDepth uint32
	maxAmp   float64

	peak  uint64
	sumSq float64
	count uint64
}

// NewMeter returns a Meter for bitDepth, which must be 16 or 24.
func NewMeter(bitDepth uint32) (*Meter, error) {
	maxAmp, ok := utils.MaxAmplitude(bitDepth)
	if !ok {
		return nil, fmt.Errorf("%w: %d", audio.ErrUnsupportedBitDepth, bitDepth)
	}

	return &Meter{
		bitDepth: bitDepth,
		maxAmp:   float64(maxAmp),
	}, nil
}

// Write feeds the next run of samples.
func (m *Meter) Write(samples []int) {
	for _, s := range samples {
		if a := utils.AbsInt(s); a > m.peak {
			m.peak = a
		}
		v := float64(s) / m.maxAmp
		m.sumSq += v * v
	}
	m.count += uint64(len(samples))
}

// Count is the number of samples written so far.
func (m *Meter) Count() uint64 { return m.count }

// Peak returns max(|sample|) relative to full scale, capped at 1.0.
// 24-bit peaks are truncated to six decimals.
func (m *Meter) Peak() float64 {
	peak := min(float64(m.peak)/m.maxAmp, 1.0)
	if m.bitDepth == 24 {
		peak = math.Trunc(peak*1e6) / 1e6
	}

	return peak
}

// RMSdB returns 20*log10 of the RMS amplitude rounded to two decimals.
// An empty or silent run yields -Inf.
func (m *Meter) RMSdB() float64 {
	if m.count == 0 {
		return math.Inf(-1)
	}

	rms := math.Sqrt(m.sumSq / float64(m.count))
	db := 20 * math.Log10(rms)

	return math.Round(db*100) / 100
}

// Peak computes the peak level of samples at bitDepth.
func Peak(samples []int, bitDepth uint32) (float64, error) {
	m, err := NewMeter(bitDepth)
	if err != nil {
		return 0, err
	}
	m.Write(samples)

	return m.Peak(), nil
}

// RMSdB computes the RMS level in dB of samples at bitDepth.
func RMSdB(samples []int, bitDepth uint32) (float64, error) {
	m, err := NewMeter(bitDepth)
	if err != nil {
		return 0, err
	}
	m.Write(samples)

	return m.RMSdB(), nil
}
