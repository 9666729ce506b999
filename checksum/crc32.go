// SPDX-License-Identifier: EPL-2.0

// Package checksum computes the CRC32 of decoded PCM, the way audio
// identification tools do it for lossless rips: IEEE polynomial over the
// little-endian sample bytes at the stream's true bit depth.
//
// 16-bit samples are written as 2 bytes. 24-bit samples are sign-extended from
// their low 24 bits and written as exactly 3 bytes; any stray bits of the
// wider container never reach the checksum.
package checksum

import (
	"fmt"
	"hash"
	"hash/crc32"

	"github.com/ik5/audioinfo/audio"
	"github.com/ik5/audioinfo/utils"
)

// CRC32 is a running checksum over samples of a single bit depth.
type CRC32 struct {
	h        hash.Hash32
	bitDepth uint32
	buf      []byte
}

// New returns a CRC32 for 16 or 24 bit samples.
func New(bitDepth uint32) (*CRC32, error) {
	if bitDepth != 16 && bitDepth != 24 {
		return nil, fmt.Errorf("%w: %d", audio.ErrUnsupportedBitDepth, bitDepth)
	}

	return &CRC32{
		h:        crc32.NewIEEE(),
		bitDepth: bitDepth,
		buf:      make([]byte, 0, 4096*3),
	}, nil
}

// Write feeds the next run of interleaved samples.
func (c *CRC32) Write(samples []int) {
	buf := c.buf[:0]

	switch c.bitDepth {
	case 16:
		for _, s := range samples {
			v := uint16(utils.ToInt16(s))
			buf = append(buf, byte(v), byte(v>>8))
		}
	case 24:
		for _, s := range samples {
			v := utils.SignExtend24(s)
			buf = append(buf, byte(v), byte(v>>8), byte(v>>16))
		}
	}

	// hash.Hash never returns an error.
	_, _ = c.h.Write(buf)
	c.buf = buf
}

// Sum32 returns the checksum of everything written so far.
func (c *CRC32) Sum32() uint32 { return c.h.Sum32() }

// String renders the checksum as 8 upper-case hex digits.
func (c *CRC32) String() string { return Format(c.Sum32()) }

// Format renders a CRC32 value the way reports show it.
func Format(sum uint32) string {
	return fmt.Sprintf("%08X", sum)
}

// Sum computes the formatted CRC32 of samples at bitDepth.
func Sum(samples []int, bitDepth uint32) (string, error) {
	c, err := New(bitDepth)
	if err != nil {
		return "", err
	}
	c.Write(samples)

	return c.String(), nil
}
