// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoder abstraction audioinfo is built on.
//
// This package contains:
//   - Stream interface for decoded integer PCM
//   - Decoder interface that opens a Stream from a reader
//   - Registry for looking decoders up by file extension
//
// # Stream Interface
//
//	type Stream interface {
//	    Info() StreamInfo
//	    ReadSamples(buf *goaudio.IntBuffer) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// StreamInfo carries what the container declares up front: sample rate, bit
// depth, channel count, total samples per channel (zero when unknown) and the
// encoder's checksum of the audio.
//
// # Sample Format
//
// Unlike float pipelines, samples stay integers at the stream's own bit
// depth, interleaved by channel in decoding order. A 16-bit stream yields
// values in [-32768, 32767], a 24-bit stream values in [-8388608, 8388607].
// Checksums over decoded PCM depend on the exact integer values, so no
// normalization happens here.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("flac", flac.Decoder{})
//	decoder, ok := registry.Get(".flac")
//
// Lookups ignore a leading dot and are otherwise case sensitive.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. Other errors
// indicate problems with the stream:
//
//	buf := &goaudio.IntBuffer{Data: make([]int, stream.BufSize())}
//	for {
//	    n, err := stream.ReadSamples(buf)
//	    // Process buf.Data[:n] first, n may be > 0 together with io.EOF
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decoding error
//	    }
//	}
package audio
