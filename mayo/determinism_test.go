package mayo

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayo-go/kdf"
)

// fixedReader replays a fixed byte stream, cycling once it runs out. It
// stands in for the known-answer-test style "fixed seed in, fixed bytes
// out" harness used to validate MAYO implementations — everything the
// core touches downstream of randomness is otherwise a pure function of
// its inputs.
type fixedReader struct {
	data []byte
	pos  int
}

func (f *fixedReader) Read(p []byte) (int, error) {
	n := copy(p, f.data[f.pos:])
	f.pos += n
	if f.pos >= len(f.data) {
		f.pos = 0
	}
	return n, nil
}

func withFixedRandomness(t *testing.T, seed []byte) {
	t.Helper()
	old := kdf.RandReader
	kdf.RandReader = &fixedReader{data: seed}
	t.Cleanup(func() { kdf.RandReader = old })
}

func TestKeyExpansionIsPureGivenFixedSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5A}, 4096)
	withFixedRandomness(t, seed)

	cpk1, csk1, err := CompactKeyGen(MAYO1)
	require.NoError(t, err)

	withFixedRandomness(t, seed)
	cpk2, csk2, err := CompactKeyGen(MAYO1)
	require.NoError(t, err)

	assert.Equal(t, cpk1, cpk2)
	assert.Equal(t, csk1, csk2)

	esk1, err := ExpandSK(MAYO1, csk1)
	require.NoError(t, err)
	esk2, err := ExpandSK(MAYO1, csk2)
	require.NoError(t, err)
	assert.Equal(t, esk1, esk2)

	epk1, err := ExpandPK(MAYO1, cpk1)
	require.NoError(t, err)
	epk2, err := ExpandPK(MAYO1, cpk2)
	require.NoError(t, err)
	assert.Equal(t, epk1, epk2)
}

func TestSignIsDeterministicGivenFixedRandomness(t *testing.T) {
	seed := bytes.Repeat([]byte{0xC3}, 8192)
	withFixedRandomness(t, seed)
	_, csk, err := CompactKeyGen(MAYO1)
	require.NoError(t, err)
	esk, err := ExpandSK(MAYO1, csk)
	require.NoError(t, err)

	msg := []byte("deterministic replay")

	withFixedRandomness(t, seed)
	sig1, err := Sign(MAYO1, esk, msg)
	require.NoError(t, err)

	withFixedRandomness(t, seed)
	sig2, err := Sign(MAYO1, esk, msg)
	require.NoError(t, err)

	assert.Equal(t, sig1, sig2)
}

var _ io.Reader = (*fixedReader)(nil)
