// ABOUTME: Tests for the PCM16 codec
// ABOUTME: Covers clamping, round trips, and malformed payloads
package audio

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCapture(t *testing.T) {
	chunk := EncodeCapture([]float32{0, 0.5, -0.5})

	assert.Equal(t, CaptureMimeType, chunk.MimeType)

	raw, err := base64.StdEncoding.DecodeString(chunk.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0xc0}, raw)
}

func TestEncodeCapture_ClampsOutOfRange(t *testing.T) {
	chunk := EncodeCapture([]float32{1.0, 2.0, -2.0})

	samples, err := DecodePlayback(chunk.Data)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	// Full scale positive clamps to 32767, negative to -32768
	assert.InDelta(t, 0.99997, samples[0], 0.0001)
	assert.InDelta(t, 0.99997, samples[1], 0.0001)
	assert.InDelta(t, -1.0, samples[2], 0.0001)
}

func TestRoundTrip(t *testing.T) {
	in := []float32{0, 0.25, -0.25, 0.75, -0.75}

	out, err := DecodePlayback(EncodeCapture(in).Data)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.InDelta(t, in[i], out[i], 1.0/32768, "sample %d", i)
	}
}

func TestDecodePlayback_Malformed(t *testing.T) {
	_, err := DecodePlayback("not base64!!!")
	assert.Error(t, err)

	// Three bytes cannot hold whole 16-bit samples
	_, err = DecodePlayback(base64.StdEncoding.EncodeToString([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 1.0, Duration(PlaybackSampleRate, PlaybackSampleRate))
	assert.Equal(t, 0.5, Duration(8000, CaptureSampleRate))
	assert.Equal(t, 0.0, Duration(100, 0))
}
