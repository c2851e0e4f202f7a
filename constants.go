package pcm

// Signed 16-bit sample range.
const (
	// MaxSample is the largest representable 16-bit sample value.
	MaxSample = 32767

	// MinSample is the smallest representable 16-bit sample value.
	MinSample = -32768
)

// FullScale is the normalization divisor for 16-bit samples.
//
// Dividing by 32768 (rather than 32767) maps MinSample to exactly -1.0 and
// MaxSample to 32767/32768, giving the asymmetric range [-1.0, 1.0). Callers
// comparing converted output against other implementations depend on this
// exact constant.
const FullScale = 32768.0

// Byte layout of raw PCM input.
const (
	bytesPerSample = 2 // int16, little-endian
)
