package pcm

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by [ToFloat32] when the destination slice is
// shorter than the source.
var ErrShortBuffer = errors.New("pcm: destination shorter than source")

// ToFloat32 writes src[i] / 32768 into dst[i] for every source sample,
// normalizing 16-bit PCM to float32 in [-1.0, 1.0). See [FullScale] for why
// the divisor is 32768 and not 32767.
//
// dst must be at least as long as src; otherwise ErrShortBuffer is returned
// and nothing is written. Elements of dst beyond len(src) are left untouched.
// The function does not allocate and does not retain either slice.
//
// An empty src is a no-op.
func ToFloat32(dst []float32, src []int16) error {
	if len(dst) < len(src) {
		return ErrShortBuffer
	}

	for i, s := range src {
		dst[i] = float32(s) / FullScale
	}

	return nil
}

// Float32 returns the samples normalized to float32 in [-1.0, 1.0).
// It is the allocating convenience form of [ToFloat32].
func Float32(src []int16) []float32 {
	dst := make([]float32, len(src))
	for i, s := range src {
		dst[i] = float32(s) / FullScale
	}
	return dst
}

// Float32FromBytes converts raw little-endian 16-bit PCM bytes straight to
// normalized float32 in a single pass, without an intermediate int16 slice.
// A trailing odd byte is ignored.
//
// This is the conversion a transcription front end applies to buffered
// capture chunks before handing them to a speech model.
func Float32FromBytes(data []byte) []float32 {
	n := len(data) / bytesPerSample
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(data[i*bytesPerSample:]))
		out[i] = float32(s) / FullScale
	}
	return out
}

// DecodeInt16 converts raw little-endian 16-bit PCM bytes to samples.
// A trailing odd byte is ignored.
func DecodeInt16(data []byte) []int16 {
	n := len(data) / bytesPerSample
	out := make([]int16, n)
	for i := 0; i < n; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*bytesPerSample:]))
	}
	return out
}

// EncodeInt16 converts samples to raw little-endian 16-bit PCM bytes.
func EncodeInt16(samples []int16) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(s))
	}
	return out
}
