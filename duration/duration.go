// SPDX-License-Identifier: EPL-2.0

// Package duration converts between seconds and the HH:MM:SS.cc strings used
// in audioinfo reports.
//
// The text form keeps centisecond precision only, so Parse(Format(x)) loses
// everything below 1/100 s. Totals built from parsed durations inherit that.
package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders seconds as HH:MM:SS.cc. Hours are not bounded. The
// centiseconds are rounded from the fractional part and capped at 99, they
// never carry into the seconds. Negative and NaN input formats as zero.
func Format(seconds float64) string {
	if !(seconds > 0) {
		seconds = 0
	}

	hours := math.Floor(seconds / 3600)
	minutes := math.Floor((seconds - hours*3600) / 60)
	secs := math.Floor(seconds - hours*3600 - minutes*60)

	_, frac := math.Modf(seconds)
	centis := min(math.Round(frac*100), 99)

	return fmt.Sprintf("%02d:%02d:%02d.%02d",
		uint64(hours), uint64(minutes), uint64(secs), uint64(centis))
}

// Parse reads up to four ':' separated components (hours, minutes, seconds,
// centiseconds) back into seconds. Missing or unparsable components count
// as zero.
func Parse(text string) float64 {
	parts := strings.Split(text, ":")

	component := func(i int) float64 {
		if i >= len(parts) {
			return 0
		}
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil {
			return 0
		}
		return v
	}

	return component(0)*3600 + component(1)*60 + component(2) + component(3)/100
}

// FromSamples formats the duration of totalSamples at sampleRate Hz.
func FromSamples(totalSamples uint64, sampleRate uint32) string {
	if sampleRate == 0 {
		return Format(0)
	}

	return Format(float64(totalSamples) / float64(sampleRate))
}

// Sum adds formatted durations and formats the total.
func Sum(durations ...string) string {
	var total float64
	for _, d := range durations {
		total += Parse(d)
	}

	return Format(total)
}
