// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
