package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audioinfo"
	"github.com/ik5/audioinfo/config"
	"github.com/ik5/audioinfo/internal/output"
	"github.com/ik5/audioinfo/internal/version"
	"github.com/ik5/audioinfo/report"
	"github.com/ik5/audioinfo/scan"
)

type Dependencies struct {
	Config *config.Config
	// Options overrides the scan options built from flags. Tests use it to
	// inject a decoder registry.
	Options *audioinfo.Options
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var (
		verbose  bool
		printOut bool
		onError  string
		workers  int
	)

	rootCmd := &cobra.Command{
		Use:   "audioinfo <directory> [output]",
		Short: "Generates an audioinfo file for the given directory",
		Long: "Scans a directory tree for FLAC files and writes a report with duration, " +
			"sample format, CRC32, MD5 and peak/RMS levels of every file.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(cmd.ErrOrStderr())

			policy, err := scan.ParsePolicy(onError)
			if err != nil {
				return err
			}
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}

			opts := audioinfo.Options{}
			if deps.Options != nil {
				opts = *deps.Options
			}
			opts.Policy = policy
			opts.Workers = workers
			opts.Logger = newLogger(cmd.ErrOrStderr(), verbose)

			root := args[0]
			outPath := deps.Config.Output
			if len(args) > 1 {
				outPath = args[1]
			}

			if verbose {
				formatter.Scanning(root)
			}

			rep, scanErr := audioinfo.Generate(root, opts)
			if rep == nil {
				return fmt.Errorf("scanning %s: %w", root, scanErr)
			}
			if scanErr != nil {
				formatter.ScanStopped(scanErr)
			}

			if printOut {
				return report.Render(cmd.OutOrStdout(), rep)
			}

			size, err := save(outPath, rep)
			if err != nil {
				return err
			}

			formatter.ScanSummary(rep.Summary.TotalFiles, rep.Summary.TotalDuration)
			formatter.ReportSaved(outPath, size)

			return nil
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	flags := rootCmd.Flags()
	flags.BoolVarP(&verbose, "verbose", "v", deps.Config.Verbose, "Enables verbose (debug) output")
	flags.BoolVarP(&printOut, "print", "p", false, "Print AudioInfo to stdout instead of writing a file")
	flags.StringVar(&onError, "on-error", deps.Config.OnError, "What to do when a file cannot be processed: abort or skip")
	flags.IntVar(&workers, "workers", deps.Config.Workers, "Number of files processed at once")

	return rootCmd
}

// save renders the whole report before creating the file, so a render
// problem never leaves a truncated report behind.
func save(path string, rep *report.AudioReport) (int, error) {
	var buf bytes.Buffer
	if err := report.Render(&buf, rep); err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("writing audioinfo file: %w", err)
	}

	return buf.Len(), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
