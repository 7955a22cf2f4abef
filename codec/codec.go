// Package codec packs and unpacks GF(16) nibbles and upper-triangular
// matrices to and from byte strings, per MAYO's wire encoding.
package codec

import (
	"errors"
	"fmt"

	"mayo-go/gf16"
	"mayo-go/matrix"
)

// ErrInsufficientBytes is returned when a decode call is given fewer
// bytes than its target length requires.
var ErrInsufficientBytes = errors.New("codec: insufficient bytes")

// ByteLen returns ceil(count/2), the number of bytes needed to pack count
// nibbles.
func ByteLen(count int) int { return (count + 1) / 2 }

// EncodeVec packs v into ceil(len(v)/2) bytes: element 2k occupies byte k's
// low nibble, element 2k+1 occupies its high nibble; a trailing odd
// element leaves the high nibble zero.
func EncodeVec(v []gf16.Elem) []byte {
	out := make([]byte, ByteLen(len(v)))
	for i, e := range v {
		b := e & 0xf
		if i%2 == 0 {
			out[i/2] |= b
		} else {
			out[i/2] |= b << 4
		}
	}
	return out
}

// DecodeVec unpacks count nibbles from b. It fails if b is shorter than
// ByteLen(count) bytes. The unused high nibble of a trailing odd byte is
// masked to zero rather than trusted.
func DecodeVec(b []byte, count int) ([]gf16.Elem, error) {
	need := ByteLen(count)
	if len(b) < need {
		return nil, fmt.Errorf("%w: need %d bytes for %d elements, got %d", ErrInsufficientBytes, need, count, len(b))
	}
	out := make([]gf16.Elem, count)
	for i := 0; i < count; i++ {
		byt := b[i/2]
		if i%2 == 0 {
			out[i] = byt & 0xf
		} else {
			out[i] = (byt >> 4) & 0xf
		}
	}
	return out, nil
}

// DecodeUpperTriangular decodes the upper triangle of a size x size
// symmetric matrix from a nibble-packed stream of size*(size+1)/2
// elements, mirroring each off-diagonal entry to its transposed position.
func DecodeUpperTriangular(b []byte, size int) (matrix.Matrix, error) {
	count := size * (size + 1) / 2
	elems, err := DecodeVec(b, count)
	if err != nil {
		return matrix.Matrix{}, err
	}
	m := matrix.New(size, size)
	idx := 0
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			v := elems[idx]
			idx++
			m.Set(r, c, v)
			if r != c {
				m.Set(c, r, v)
			}
		}
	}
	return m, nil
}

// EncodeUpperTriangular packs the upper triangle of a size x size matrix
// (row r, columns r..size-1) into a nibble-packed byte string. It does not
// read or require the lower triangle to be populated.
func EncodeUpperTriangular(m matrix.Matrix) []byte {
	size := m.Rows
	elems := make([]gf16.Elem, 0, size*(size+1)/2)
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			elems = append(elems, m.At(r, c))
		}
	}
	return EncodeVec(elems)
}

// DecodeUpperTriangularRaw decodes the same nibble stream as
// DecodeUpperTriangular but leaves the lower triangle at zero instead of
// mirroring it. ExpandSK needs this unmirrored view to compute P1+P1^T
// correctly: a mirrored matrix is already symmetric, so adding its
// transpose over F16 would cancel every entry and yield the zero matrix.
func DecodeUpperTriangularRaw(b []byte, size int) (matrix.Matrix, error) {
	count := size * (size + 1) / 2
	elems, err := DecodeVec(b, count)
	if err != nil {
		return matrix.Matrix{}, err
	}
	m := matrix.New(size, size)
	idx := 0
	for r := 0; r < size; r++ {
		for c := r; c < size; c++ {
			m.Set(r, c, elems[idx])
			idx++
		}
	}
	return m, nil
}

// DecodeTriangularMatricesRaw is the unmirrored counterpart of
// DecodeTriangularMatrices, used where the caller needs A+A^T rather than
// A read as a full symmetric matrix.
func DecodeTriangularMatricesRaw(b []byte, m, size int) ([]matrix.Matrix, error) {
	chunkLen := ByteLen(size * (size + 1) / 2)
	chunks, err := splitChunks(b, m, chunkLen)
	if err != nil {
		return nil, err
	}
	out := make([]matrix.Matrix, m)
	for i, chunk := range chunks {
		mat, err := DecodeUpperTriangularRaw(chunk, size)
		if err != nil {
			return nil, err
		}
		out[i] = mat
	}
	return out, nil
}

// DecodeDense decodes a rows x cols dense matrix in row-major order.
func DecodeDense(b []byte, rows, cols int) (matrix.Matrix, error) {
	elems, err := DecodeVec(b, rows*cols)
	if err != nil {
		return matrix.Matrix{}, err
	}
	m := matrix.New(rows, cols)
	copy(m.Data, elems)
	return m, nil
}

// EncodeDense packs a dense matrix in row-major order.
func EncodeDense(m matrix.Matrix) []byte {
	return EncodeVec(m.Data)
}

// splitChunks slices b into n equal chunks of chunkLen bytes, failing if
// b is too short.
func splitChunks(b []byte, n, chunkLen int) ([][]byte, error) {
	need := n * chunkLen
	if len(b) < need {
		return nil, fmt.Errorf("%w: need %d bytes for %d chunks of %d, got %d", ErrInsufficientBytes, need, n, chunkLen, len(b))
	}
	chunks := make([][]byte, n)
	for i := 0; i < n; i++ {
		chunks[i] = b[i*chunkLen : (i+1)*chunkLen]
	}
	return chunks, nil
}

// DecodeTriangularMatrices splits b into m equal chunks of
// ByteLen(size*(size+1)/2) bytes each and decodes each as a symmetric
// size x size matrix. Used for both P1 (size=v) and P3 (size=o).
func DecodeTriangularMatrices(b []byte, m, size int) ([]matrix.Matrix, error) {
	chunkLen := ByteLen(size * (size + 1) / 2)
	chunks, err := splitChunks(b, m, chunkLen)
	if err != nil {
		return nil, err
	}
	out := make([]matrix.Matrix, m)
	for i, chunk := range chunks {
		mat, err := DecodeUpperTriangular(chunk, size)
		if err != nil {
			return nil, err
		}
		out[i] = mat
	}
	return out, nil
}

// DecodeDenseMatrices splits b into m equal chunks of ceil(rows*cols/2)
// bytes each and decodes each as a dense rows x cols matrix. Used for P2
// and L.
func DecodeDenseMatrices(b []byte, m, rows, cols int) ([]matrix.Matrix, error) {
	chunkLen := ByteLen(rows * cols)
	chunks, err := splitChunks(b, m, chunkLen)
	if err != nil {
		return nil, err
	}
	out := make([]matrix.Matrix, m)
	for i, chunk := range chunks {
		mat, err := DecodeDense(chunk, rows, cols)
		if err != nil {
			return nil, err
		}
		out[i] = mat
	}
	return out, nil
}

// EncodeTriangularMatrices is the inverse of DecodeTriangularMatrices.
func EncodeTriangularMatrices(ms []matrix.Matrix) []byte {
	out := make([]byte, 0)
	for _, m := range ms {
		out = append(out, EncodeUpperTriangular(m)...)
	}
	return out
}

// EncodeDenseMatrices is the inverse of DecodeDenseMatrices.
func EncodeDenseMatrices(ms []matrix.Matrix) []byte {
	out := make([]byte, 0)
	for _, m := range ms {
		out = append(out, EncodeDense(m)...)
	}
	return out
}
