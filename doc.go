// Package pcm provides hot-path numeric helpers for signed 16-bit PCM audio:
// level measurement (RMS) and normalization to float32.
//
// The package exists so that voice-input pipelines can gate on signal level
// and hand normalized sample buffers to a recognizer without paying
// per-sample overhead in the calling layer. Every function is a pure,
// stateless, single-pass operation over a flat buffer.
//
// # Features
//
//   - RMS level measurement over sample slices or raw little-endian PCM bytes
//   - int16 to normalized float32 conversion with an exact -32768 -> -1.0 mapping
//   - dBFS conversion for level metering
//   - Adapters for go-audio buffer types
//   - Pure Go, no allocation on the core paths
//
// # Quick Start
//
// Gate a capture callback on signal level and normalize the kept audio:
//
//	level := pcm.RMSBytes(chunk) // chunk: raw bytes from the capture callback
//	if level < silenceThreshold {
//	    return // silence, drop the chunk
//	}
//	samples := pcm.Float32FromBytes(chunk)
//	feedRecognizer(samples)
//
// For callers that manage their own buffers, [ToFloat32] writes into a
// caller-allocated destination and never allocates:
//
//	out := make([]float32, len(samples))
//	if err := pcm.ToFloat32(out, samples); err != nil {
//	    log.Fatal(err)
//	}
//
// # Normalization Scale
//
// Conversion divides by 32768, not 32767. The result range is [-1.0, 1.0):
// -32768 maps to exactly -1.0 and 32767 maps to 32767/32768, just under 1.0.
// This asymmetry matches the signed 16-bit sample range and keeps outputs
// bit-compatible with other implementations using the same scale.
//
// # Thread Safety
//
// All functions are pure and reentrant. Concurrent calls require no
// coordination as long as the caller does not mutate an input slice during a
// call, and gives each call exclusive use of its destination slice.
package pcm
