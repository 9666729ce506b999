// SPDX-License-Identifier: EPL-2.0

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render writes r in the audioinfo text layout. Field order, indentation and
// numeric precision are fixed; strings are written unquoted.
func Render(w io.Writer, r *AudioReport) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "type: %s\n", r.FormatTag)
	fmt.Fprintf(bw, "version: %d\n", r.FormatVersion)
	fmt.Fprintf(bw, "created_by: %s\n", r.Generator)

	bw.WriteString("summary:\n")
	fmt.Fprintf(bw, "  total_files: %d\n", r.Summary.TotalFiles)
	fmt.Fprintf(bw, "  total_duration: %s\n", r.Summary.TotalDuration)
	fmt.Fprintf(bw, "  sample_rate: %d\n", r.Summary.SampleRate)
	fmt.Fprintf(bw, "  bit_depth: %d\n", r.Summary.BitDepth)
	fmt.Fprintf(bw, "  channels: %d\n", r.Summary.Channels)

	bw.WriteString("files:\n")
	for _, f := range r.Files {
		fmt.Fprintf(bw, "  - file_name: %s\n", f.FileName)
		fmt.Fprintf(bw, "    duration: %s\n", f.Duration)
		fmt.Fprintf(bw, "    total_samples: %d\n", f.TotalSamples)
		fmt.Fprintf(bw, "    sample_rate: %d\n", f.SampleRate)
		fmt.Fprintf(bw, "    bit_depth: %d\n", f.BitDepth)
		fmt.Fprintf(bw, "    channels: %d\n", f.Channels)
		fmt.Fprintf(bw, "    peak_level: %.6f\n", f.PeakLevel)
		fmt.Fprintf(bw, "    rms_db_level: %.2f\n", f.RMSdBLevel)
		fmt.Fprintf(bw, "    crc32: %s\n", f.CRC32)
		fmt.Fprintf(bw, "    md5: %s\n", f.MD5)
		bw.WriteString("\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// String renders the report into a string.
func (r *AudioReport) String() string {
	var sb strings.Builder
	// strings.Builder does not fail
	_ = Render(&sb, r)

	return sb.String()
}
