package pcm

import (
	"encoding/binary"
	"math"
)

// RMS returns the root-mean-square amplitude of the samples.
//
// The result is in the same units as the input, ranging from 0 for silence
// up to 32768 for a buffer pinned at MinSample. The sum of squares is accumulated in
// float64, which is exact for any realistic buffer length (a 16-bit square
// is at most 2^30, leaving ~23 bits of headroom in the 53-bit mantissa).
//
// An empty slice returns 0.
func RMS(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sumSq float64
	for _, s := range samples {
		v := float64(s)
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(len(samples)))
}

// RMSBytes returns the RMS amplitude of raw little-endian 16-bit PCM bytes,
// the format capture callbacks typically deliver.
//
// It is equivalent to decoding the bytes with [DecodeInt16] and calling [RMS],
// without the intermediate allocation. A trailing odd byte is ignored.
func RMSBytes(data []byte) float64 {
	n := len(data) / bytesPerSample
	if n == 0 {
		return 0
	}

	var sumSq float64
	for i := 0; i < n; i++ {
		v := float64(int16(binary.LittleEndian.Uint16(data[i*bytesPerSample:])))
		sumSq += v * v
	}

	return math.Sqrt(sumSq / float64(n))
}

// DBFS converts an amplitude in 16-bit sample units to decibels relative to
// full scale: 20 * log10(amplitude / 32768).
//
// A full-scale amplitude measures 0 dBFS; anything quieter is negative.
// Non-positive amplitudes return -Inf.
func DBFS(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(amplitude/FullScale)
}
