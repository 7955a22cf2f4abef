package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayo-go/gf16"
	"mayo-go/matrix"
)

func TestEncodeDecodeVecRoundTripEven(t *testing.T) {
	v := []gf16.Elem{1, 2, 3, 4}
	enc := EncodeVec(v)
	assert.Len(t, enc, 2)

	dec, err := DecodeVec(enc, len(v))
	require.NoError(t, err)
	assert.Equal(t, v, dec)
}

func TestEncodeDecodeVecRoundTripOdd(t *testing.T) {
	v := []gf16.Elem{5, 9, 1}
	enc := EncodeVec(v)
	assert.Len(t, enc, 2)
	assert.Equal(t, byte(0), enc[1]>>4, "trailing odd element's high nibble must be zero")

	dec, err := DecodeVec(enc, len(v))
	require.NoError(t, err)
	assert.Equal(t, v, dec)
}

func TestDecodeVecInsufficientBytes(t *testing.T) {
	_, err := DecodeVec([]byte{0x12}, 4)
	assert.ErrorIs(t, err, ErrInsufficientBytes)
}

func TestDecodeVecMasksDirtyHighNibble(t *testing.T) {
	// The high nibble of the final byte should be masked away even when
	// the input left garbage there, per the padding invariant.
	dec, err := DecodeVec([]byte{0xF3}, 1)
	require.NoError(t, err)
	assert.Equal(t, []gf16.Elem{3}, dec)
}

func TestUpperTriangularRoundTripIsSymmetric(t *testing.T) {
	size := 4
	elems := make([]gf16.Elem, size*(size+1)/2)
	for i := range elems {
		elems[i] = gf16.Elem(i % 16)
	}
	enc := EncodeVec(elems)

	m, err := DecodeUpperTriangular(enc, size)
	require.NoError(t, err)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
}

func TestEncodeUpperTriangularRoundTrip(t *testing.T) {
	size := 3
	m := matrix.New(size, size)
	v := gf16.Elem(1)
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			m.Set(r, c, v)
			m.Set(c, r, v)
			v = (v + 1) % 16
		}
	}
	enc := EncodeUpperTriangular(m)
	dec, err := DecodeUpperTriangular(enc, size)
	require.NoError(t, err)
	assert.Equal(t, m.Data, dec.Data)
}

func TestDecodeUpperTriangularRawLeavesLowerTriangleZero(t *testing.T) {
	size := 3
	elems := []gf16.Elem{1, 2, 3, 4, 5, 6}
	enc := EncodeVec(elems)

	raw, err := DecodeUpperTriangularRaw(enc, size)
	require.NoError(t, err)
	for r := 0; r < size; r++ {
		for c := 0; c < r; c++ {
			assert.Equal(t, gf16.Elem(0), raw.At(r, c))
		}
	}

	mirrored, err := DecodeUpperTriangular(enc, size)
	require.NoError(t, err)
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			assert.Equal(t, mirrored.At(r, c), raw.At(r, c))
		}
	}
}

func TestDenseMatrixRoundTrip(t *testing.T) {
	m := matrix.New(2, 3)
	for i := range m.Data {
		m.Data[i] = gf16.Elem(i + 1)
	}
	enc := EncodeDense(m)
	dec, err := DecodeDense(enc, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, m.Data, dec.Data)
}

func TestDecodeTriangularMatricesSplitsEvenly(t *testing.T) {
	size := 2
	mCount := 3
	chunkElems := size * (size + 1) / 2
	raw := make([]byte, 0)
	for i := 0; i < mCount; i++ {
		elems := make([]gf16.Elem, chunkElems)
		for j := range elems {
			elems[j] = gf16.Elem((i + j) % 16)
		}
		raw = append(raw, EncodeVec(elems)...)
	}

	mats, err := DecodeTriangularMatrices(raw, mCount, size)
	require.NoError(t, err)
	assert.Len(t, mats, mCount)
	for _, m := range mats {
		assert.Equal(t, size, m.Rows)
		assert.Equal(t, size, m.Cols)
	}
}

func TestDecodeDenseMatricesSplitsEvenly(t *testing.T) {
	rows, cols := 3, 2
	mCount := 2
	raw := make([]byte, ByteLen(rows*cols)*mCount)
	mats, err := DecodeDenseMatrices(raw, mCount, rows, cols)
	require.NoError(t, err)
	assert.Len(t, mats, mCount)
	for _, m := range mats {
		assert.Equal(t, rows, m.Rows)
		assert.Equal(t, cols, m.Cols)
	}
}
