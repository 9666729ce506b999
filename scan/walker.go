// SPDX-License-Identifier: EPL-2.0

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/audioinfo/report"
)

// DefaultExtension is the only file extension the walker processes.
const DefaultExtension = "flac"

// Policy decides what a walk does when a file fails to process.
type Policy int

const (
	// AbortOnError stops the walk at the first failing file and keeps only
	// the records gathered before it.
	AbortOnError Policy = iota
	// SkipOnError logs the failure and carries on with the next file.
	SkipOnError
)

func (p Policy) String() string {
	switch p {
	case AbortOnError:
		return "abort"
	case SkipOnError:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "abort" or "skip".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abort", "":
		return AbortOnError, nil
	case "skip":
		return SkipOnError, nil
	default:
		return AbortOnError, fmt.Errorf("unknown error policy %q, want abort or skip", s)
	}
}

// FileProcessor turns one file into a record.
type FileProcessor interface {
	Process(path string) (report.FileRecord, error)
}

// Walker finds audio files below a root directory and processes them.
type Walker struct {
	proc      FileProcessor
	logger    *slog.Logger
	extension string
	policy    Policy
	workers   int
}

type Option func(*Walker)

// WithPolicy sets the failure policy. The default is AbortOnError.
func WithPolicy(p Policy) Option {
	return func(w *Walker) { w.policy = p }
}

// WithWorkers processes up to n files at once. Records keep traversal order
// and a failure still hides every file found after it under AbortOnError.
func WithWorkers(n int) Option {
	return func(w *Walker) { w.workers = max(n, 1) }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

func NewWalker(proc FileProcessor, opts ...Option) *Walker {
	w := &Walker{
		proc:      proc,
		logger:    slog.Default(),
		extension: DefaultExtension,
		policy:    AbortOnError,
		workers:   1,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Walk processes every matching file under root in filesystem walk order.
// Entries with any path component starting with '.' below root are ignored.
//
// When a file fails under AbortOnError the records gathered so far are
// returned together with the error.
func (w *Walker) Walk(root string) ([]report.FileRecord, error) {
	root = trimRoot(root)

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("reading root: %w", err)
	}

	if w.workers > 1 {
		return w.walkParallel(root)
	}

	var (
		records []report.FileRecord
		failure error
	)

	err := w.visit(root, func(path string) bool {
		rec, err := w.proc.Process(path)
		if err != nil {
			failure = w.failed(path, err)
			return failure == nil
		}

		w.logger.Debug("processed file", recordAttrs(rec)...)
		records = append(records, rec)
		return true
	})
	if err != nil {
		return records, err
	}

	return records, failure
}

func (w *Walker) walkParallel(root string) ([]report.FileRecord, error) {
	var paths []string
	if err := w.visit(root, func(path string) bool {
		paths = append(paths, path)
		return true
	}); err != nil {
		return nil, err
	}

	type result struct {
		rec report.FileRecord
		err error
	}
	results := make([]result, len(paths))

	var g errgroup.Group
	g.SetLimit(w.workers)
	for i, path := range paths {
		g.Go(func() error {
			rec, err := w.proc.Process(path)
			results[i] = result{rec: rec, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var records []report.FileRecord
	for i, res := range results {
		if res.err != nil {
			if err := w.failed(paths[i], res.err); err != nil {
				return records, err
			}
			continue
		}

		w.logger.Debug("processed file", recordAttrs(res.rec)...)
		records = append(records, res.rec)
	}

	return records, nil
}

// visit calls fn for every candidate file until fn returns false.
func (w *Walker) visit(root string, fn func(path string) bool) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Debug("skipping unreadable entry", slog.String("path", path), slog.Any("error", err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if isHidden(root, path) {
			w.logger.Debug("skipping hidden entry", slog.String("path", path))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		w.logger.Debug("visiting", slog.String("path", path))

		if !d.Type().IsRegular() {
			return nil
		}
		if err := w.match(path); err != nil {
			return nil
		}

		if !fn(path) {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	return nil
}

func (w *Walker) match(path string) error {
	if filepath.Ext(path) != "."+w.extension {
		return ErrNotTargetExtension
	}

	return nil
}

// failed applies the policy to a processing error. A non-nil result ends the walk.
func (w *Walker) failed(path string, err error) error {
	if errors.Is(err, ErrNotTargetExtension) {
		w.logger.Debug("not a flac file", slog.String("path", path))
		return nil
	}

	if w.policy == SkipOnError {
		w.logger.Warn("skipping file", slog.String("path", path), slog.Any("error", err))
		return nil
	}

	w.logger.Error("error processing file, stopping scan", slog.String("path", path), slog.Any("error", err))
	return err
}

func trimRoot(root string) string {
	trimmed := strings.TrimRight(root, `/\`)
	if trimmed == "" {
		return root
	}

	return trimmed
}

// isHidden reports whether any component of path below root starts with '.'.
func isHidden(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}

	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}

	return false
}

func recordAttrs(rec report.FileRecord) []any {
	return []any{
		slog.String("file", rec.FileName),
		slog.String("duration", rec.Duration),
		slog.Uint64("bit_depth", uint64(rec.BitDepth)),
		slog.Float64("peak_level", rec.PeakLevel),
		slog.Float64("rms_db_level", rec.RMSdBLevel),
		slog.String("crc32", rec.CRC32),
		slog.String("md5", rec.MD5),
	}
}
