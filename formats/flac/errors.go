// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input could not be parsed as a FLAC stream
	ErrNotFlacFile = errors.New("not a FLAC file")
	// ErrChannelMismatch indicates a frame carries a different channel count than the stream header
	ErrChannelMismatch = errors.New("frame channel count does not match stream info")
)
