// SPDX-License-Identifier: EPL-2.0

// Package audioinfo describes a collection of FLAC files.
//
// It walks a directory tree, decodes every .flac file it finds and reports
// per-file duration, sample geometry, a CRC32 over the decoded PCM, the
// encoder's MD5 and peak/RMS loudness, plus a summary of the collection.
//
// # Quick Start
//
// The simplest way to scan a directory is Generate:
//
//	rep, err := audioinfo.Generate("/music/album", audioinfo.Options{})
//	if rep == nil {
//	    // the root could not be read
//	}
//	if err != nil {
//	    // a file stopped the scan, rep holds the files before it
//	}
//	fmt.Print(rep)
//
// # Report Layout
//
// Reports are written by report.Render in a fixed text layout:
//
//	type: audioinfo
//	version: 0
//	created_by: audioinfo
//	summary:
//	  total_files: 1
//	  total_duration: 00:04:39.95
//	  sample_rate: 44100
//	  bit_depth: 16
//	  channels: 2
//	files:
//	  - file_name: 01 - Intro.flac
//	    duration: 00:04:39.95
//	    ...
//
// The summary's sample_rate, bit_depth and channels are a nominal CD baseline,
// they are not derived from the files.
//
// # Failure Policy
//
// By default the first file that cannot be processed (unreadable, not FLAC,
// no sample count, or a bit depth other than 16 and 24) ends the scan and
// only the files before it are reported. Set Options.Policy to
// scan.SkipOnError to skip such files instead.
//
// # Building Blocks
//
// Each step is usable on its own:
//   - formats/flac decodes FLAC into an audio.Stream of integer samples
//   - checksum computes the bit-depth aware CRC32
//   - level measures peak and RMS
//   - duration formats and parses HH:MM:SS.cc
//   - scan processes files and walks directories
//   - report builds and renders the report
//
// # Performance
//
// Samples are streamed through the checksum and the level meter in chunks,
// files are never held in memory as a whole. Options.Workers processes
// several files at once while keeping traversal order in the report.
package audioinfo
