// ABOUTME: PCM16 codec for the realtime voice link
// ABOUTME: Little-endian 16-bit frames over base64, mono capture at 16kHz and playback at 24kHz
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

const (
	// CaptureSampleRate is the microphone rate the remote endpoint expects.
	CaptureSampleRate = 16000
	// PlaybackSampleRate is the rate of audio the remote endpoint returns.
	PlaybackSampleRate = 24000

	// CaptureMimeType tags outgoing capture chunks on the wire.
	CaptureMimeType = "audio/pcm;rate=16000"

	bytesPerSample = 2
)

// Chunk is one base64 payload of PCM16 bytes ready to send upstream.
type Chunk struct {
	Data     string
	MimeType string
}

// EncodeCapture converts normalized float32 samples to a wire chunk:
// PCM16 little-endian, base64 encoded, tagged with the capture rate.
// Samples outside [-1, 1] are clamped rather than wrapped.
func EncodeCapture(samples []float32) Chunk {
	buf := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		v := int32(s * 32768)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		binary.LittleEndian.PutUint16(buf[i*bytesPerSample:], uint16(int16(v)))
	}
	return Chunk{
		Data:     base64.StdEncoding.EncodeToString(buf),
		MimeType: CaptureMimeType,
	}
}

// DecodePlayback converts a base64 PCM16 payload from the remote
// endpoint back to normalized float32 samples.
func DecodePlayback(data string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decoding audio payload: %w", err)
	}
	if len(raw)%bytesPerSample != 0 {
		return nil, fmt.Errorf("audio payload has odd length %d", len(raw))
	}

	samples := make([]float32, len(raw)/bytesPerSample)
	for i := range samples {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample:]))) / 32768.0
	}
	return samples, nil
}

// Duration returns the playback time of a sample buffer at the given
// rate, in seconds.
func Duration(sampleCount, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(sampleCount) / float64(sampleRate)
}
