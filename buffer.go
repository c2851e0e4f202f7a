package pcm

import (
	"math"

	"github.com/go-audio/audio"
)

// BufferRMS returns the RMS amplitude of a go-audio int buffer holding
// 16-bit PCM data. For multi-channel buffers the measurement is taken over
// the interleaved samples as a whole.
//
// Returns audio.ErrInvalidBuffer if the buffer or its format is nil.
func BufferRMS(buf *audio.IntBuffer) (float64, error) {
	if buf == nil || buf.Format == nil {
		return 0, audio.ErrInvalidBuffer
	}
	if len(buf.Data) == 0 {
		return 0, nil
	}

	var sumSq float64
	for _, s := range buf.Data {
		v := float64(s)
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(buf.Data))), nil
}

// ToFloat32Buffer converts a go-audio int buffer holding 16-bit PCM data to
// a float32 buffer normalized to [-1.0, 1.0), using the same 32768 divisor
// as [ToFloat32]. The format is carried over and SourceBitDepth is set to 16.
//
// Returns audio.ErrInvalidBuffer if the buffer or its format is nil.
func ToFloat32Buffer(buf *audio.IntBuffer) (*audio.Float32Buffer, error) {
	if buf == nil || buf.Format == nil {
		return nil, audio.ErrInvalidBuffer
	}

	out := &audio.Float32Buffer{
		Format:         buf.Format,
		Data:           make([]float32, len(buf.Data)),
		SourceBitDepth: 16,
	}
	for i, s := range buf.Data {
		out.Data[i] = float32(s) / FullScale
	}

	return out, nil
}
