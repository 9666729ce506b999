package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Scanning(root string) {
	fmt.Fprintf(f.w, "🔍 Scanning %s...\n", root)
}

func (f *Formatter) ScanStopped(reason error) {
	fmt.Fprintf(f.w, "⚠️  Scan stopped early: %v\n", reason)
}

func (f *Formatter) ReportSaved(path string, size int) {
	fmt.Fprintf(f.w, "✅ Report saved: %s (%s)\n", path, humanize.Bytes(uint64(size)))
}

func (f *Formatter) ScanSummary(files int, total string) {
	fmt.Fprintf(f.w, "🎵 %s %s, %s total\n", humanize.Comma(int64(files)), plural(files, "file", "files"), total)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
