// SPDX-License-Identifier: EPL-2.0

package scan

import (
	"errors"

	"github.com/ik5/audioinfo/audio"
)

var (
	// ErrNotTargetExtension marks files that are skipped silently.
	ErrNotTargetExtension = errors.New("not a flac file")
	// ErrStreamOpen means the file could not be opened or is not a valid stream.
	ErrStreamOpen = errors.New("cannot open audio stream")
	// ErrMissingSampleCount means the decoder does not know the total sample count.
	ErrMissingSampleCount = errors.New("total samples not found")
	// ErrStreamDecode means the stream failed part way through decoding.
	ErrStreamDecode = errors.New("cannot decode audio stream")
	// ErrUnsupportedBitDepth means the stream is neither 16 nor 24 bit.
	ErrUnsupportedBitDepth = audio.ErrUnsupportedBitDepth
)
