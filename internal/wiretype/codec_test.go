package wiretype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 8)

	n, err := EncodeU8(0xAB, buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	v, n, err := DecodeU8(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
	assert.Equal(t, 1, n)

	n, err = EncodeI16(-12345, buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	iv, _, err := DecodeI16(buf)
	require.NoError(t, err)
	assert.Equal(t, int16(-12345), iv)

	n, err = EncodeU32(0xDEADBEEF, buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	uv, _, err := DecodeU32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), uv)

	n, err = EncodeF32(3.14159, buf)
	require.NoError(t, err)
	fv, _, err := DecodeF32(buf)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, fv, 1e-4)

	n, err = EncodeF64(2.718281828, buf)
	require.NoError(t, err)
	dv, _, err := DecodeF64(buf)
	require.NoError(t, err)
	assert.InDelta(t, 2.718281828, dv, 1e-12)
	_ = n
}

// TestLittleEndianFixed asserts the encoding is little-endian regardless of
// host byte order, per spec.md §4.1.
func TestLittleEndianFixed(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 4)
	_, err := EncodeU32(0x01020304, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestShortBufferOnEncode(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 1)
	_, err := EncodeU32(42, buf)
	require.Error(t, err)
	var shortErr *ShortBufferError
	assert.ErrorAs(t, err, &shortErr)
}

func TestShortBufferOnDecode(t *testing.T) {
	t.Parallel()
	_, _, err := DecodeU64([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestArrayRoundTrip(t *testing.T) {
	t.Parallel()
	values := []uint16{1, 2, 3, 4, 5}
	buf := make([]byte, 10)
	n, err := EncodeU16Array(values, buf)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	decoded, n, err := DecodeU16Array(buf, len(values))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, values, decoded)
}

func TestArrayShortBufferPropagates(t *testing.T) {
	t.Parallel()
	values := []uint32{1, 2, 3}
	buf := make([]byte, 8) // one element (4 bytes) short of the 12 needed
	_, err := EncodeU32Array(values, buf)
	require.Error(t, err)
}

func TestTypeSizeAndOrderClass(t *testing.T) {
	t.Parallel()
	u32 := Type{Kind: KindU32}
	assert.Equal(t, 4, u32.Size())
	assert.Equal(t, 4, u32.OrderClass())

	arr := NewArray(Type{Kind: KindU16}, 7)
	assert.Equal(t, 14, arr.Size())
	// ordering class uses the element's size, not the array's total size.
	assert.Equal(t, 2, arr.OrderClass())
	assert.Equal(t, "uint16_t", arr.PrimitiveName())
}

func TestNewArrayPanicsOutOfRange(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewArray(Type{Kind: KindU8}, 0)
	})
	assert.Panics(t, func() {
		NewArray(Type{Kind: KindU8}, 256)
	})
}
