package audioinfo

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ik5/audioinfo/audio"
	"github.com/ik5/audioinfo/formats/flac"
	"github.com/ik5/audioinfo/report"
	"github.com/ik5/audioinfo/scan"
)

// Options tune a scan. The zero value scans sequentially, aborts on the first
// failing file and logs through slog.Default().
type Options struct {
	// Policy applied when a file fails to process.
	Policy scan.Policy
	// Workers is the number of files processed at once. Values below 2 scan sequentially.
	Workers int
	// Logger receives diagnostics. nil uses slog.Default().
	Logger *slog.Logger
	// Registry supplies the decoder for the scanned extension. nil uses DefaultRegistry().
	Registry *audio.Registry
}

// DefaultRegistry returns a registry with the FLAC decoder registered.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(scan.DefaultExtension, flac.Decoder{})

	return reg
}

// Generate scans root for FLAC files and builds the report.
//
// A report is returned even when err is not nil: if a file aborted the scan,
// the report holds the files processed before it and err says why the scan
// stopped. Only a root that cannot be read yields a nil report.
func Generate(root string, opts Options) (*report.AudioReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	dec, ok := reg.Get(scan.DefaultExtension)
	if !ok {
		return nil, fmt.Errorf("no decoder registered for %q", scan.DefaultExtension)
	}

	walker := scan.NewWalker(
		scan.NewProcessor(dec, logger),
		scan.WithPolicy(opts.Policy),
		scan.WithWorkers(opts.Workers),
		scan.WithLogger(logger),
	)

	records, err := walker.Walk(root)
	if records == nil && err != nil && !isFileError(err) {
		return nil, err
	}

	return report.New(records), err
}

// isFileError reports whether err came from processing a single file rather
// than from reading the directory tree.
func isFileError(err error) bool {
	for _, target := range []error{
		scan.ErrStreamOpen,
		scan.ErrMissingSampleCount,
		scan.ErrStreamDecode,
		scan.ErrUnsupportedBitDepth,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
