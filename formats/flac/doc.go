// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding on top of github.com/mewkiz/flac.
//
// # Decoding FLAC Files
//
// Use the Decoder to open a stream:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("track.flac")
//	defer file.Close()
//
//	stream, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	info := stream.Info() // rate, bit depth, channels, total samples, MD5
//
// # Reading Samples
//
// Samples come out as integers at the stream's own bit depth, interleaved by
// channel in decoding order:
//
//	buf := &goaudio.IntBuffer{Data: make([]int, stream.BufSize())}
//	for {
//	    n, err := stream.ReadSamples(buf)
//	    process(buf.Data[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Closing the stream does not close the reader given to Decode.
//
// # Error Handling
//
//   - ErrNotFlacFile: the input has no valid FLAC signature or STREAMINFO block
//   - ErrChannelMismatch: a frame disagrees with the stream's channel count
package flac
