// SPDX-License-Identifier: EPL-2.0

package audioinfo

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audioinfo/audio"
	"github.com/ik5/audioinfo/internal/audiotest"
	"github.com/ik5/audioinfo/scan"
)

func testOptions(t *testing.T, policy scan.Policy) Options {
	t.Helper()

	dec := audiotest.NewMockDecoder()
	// 1.5 s and 2.5 s at 44.1 kHz
	dec.Add("short", func() *audiotest.MockStream { return audiotest.NewSineStream(44100, 16, 2, 66150, 440) })
	dec.Add("long", func() *audiotest.MockStream { return audiotest.NewSineStream(44100, 24, 2, 110250, 440) })
	dec.Add("depth8", func() *audiotest.MockStream { return audiotest.NewSilentStream(44100, 8, 2, 10) })

	reg := audio.NewRegistry()
	reg.Register("flac", dec)

	return Options{
		Policy:   policy,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: reg,
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.flac", "short")
	write(t, dir, "b.flac", "long")
	write(t, dir, "cover.jpg", "depth8")

	rep, err := Generate(dir, testOptions(t, scan.AbortOnError))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if rep.Summary.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", rep.Summary.TotalFiles)
	}
	if rep.Summary.TotalDuration != "00:00:04.00" {
		t.Errorf("TotalDuration = %q, want 00:00:04.00", rep.Summary.TotalDuration)
	}

	out := rep.String()
	for _, want := range []string{"  - file_name: a.flac\n", "  - file_name: b.flac\n", "    bit_depth: 24\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestGenerate_AbortKeepsEarlierFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.flac", "short")
	write(t, dir, "b.flac", "depth8")
	write(t, dir, "c.flac", "long")

	rep, err := Generate(dir, testOptions(t, scan.AbortOnError))
	if !errors.Is(err, scan.ErrUnsupportedBitDepth) {
		t.Errorf("Generate() error = %v, want ErrUnsupportedBitDepth", err)
	}
	if rep == nil {
		t.Fatal("Generate() report = nil, want partial report")
	}
	if rep.Summary.TotalFiles != 1 || rep.Files[0].FileName != "a.flac" {
		t.Errorf("report files = %+v, want only a.flac", rep.Files)
	}
}

func TestGenerate_AbortOnFirstFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.flac", "depth8")
	write(t, dir, "b.flac", "short")

	rep, err := Generate(dir, testOptions(t, scan.AbortOnError))
	if !errors.Is(err, scan.ErrUnsupportedBitDepth) {
		t.Errorf("Generate() error = %v, want ErrUnsupportedBitDepth", err)
	}
	if rep == nil || rep.Summary.TotalFiles != 0 {
		t.Fatalf("Generate() report = %+v, want empty report", rep)
	}
	if !strings.HasSuffix(rep.String(), "files:\n") {
		t.Errorf("empty report should end with files key:\n%s", rep.String())
	}
}

func TestGenerate_Skip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write(t, dir, "a.flac", "depth8")
	write(t, dir, "b.flac", "short")

	rep, err := Generate(dir, testOptions(t, scan.SkipOnError))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if rep.Summary.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1", rep.Summary.TotalFiles)
	}
}

func TestGenerate_MissingRoot(t *testing.T) {
	t.Parallel()

	rep, err := Generate(filepath.Join(t.TempDir(), "missing"), testOptions(t, scan.AbortOnError))
	if err == nil {
		t.Error("Generate() error = nil, want error")
	}
	if rep != nil {
		t.Errorf("Generate() report = %+v, want nil", rep)
	}
}

func TestGenerate_NoDecoder(t *testing.T) {
	t.Parallel()

	opts := testOptions(t, scan.AbortOnError)
	opts.Registry = audio.NewRegistry()

	if _, err := Generate(t.TempDir(), opts); err == nil {
		t.Error("Generate() error = nil, want missing decoder error")
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	if _, ok := DefaultRegistry().Get("flac"); !ok {
		t.Error("DefaultRegistry() has no flac decoder")
	}
	if _, ok := DefaultRegistry().Get("FLAC"); ok {
		t.Error("DefaultRegistry() matched FLAC, extension match must be exact")
	}
}
