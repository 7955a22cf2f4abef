package mayo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMAYO1SignatureLength(t *testing.T) {
	assert.Equal(t, 57, MAYO1.SigBytes)
}

func TestMAYO2SignatureLength(t *testing.T) {
	assert.Equal(t, 63, MAYO2.SigBytes)
}

func TestRoundTripMAYO1EmptyMessage(t *testing.T) {
	cpk, csk, err := Keypair("mayo1")
	require.NoError(t, err)

	sig, err := SignMessage("mayo1", csk, []byte{})
	require.NoError(t, err)
	assert.Len(t, sig, MAYO1.SigBytes)

	got, ok, err := Open("mayo1", cpk, sig)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestRoundTripMAYO2ThirtyTwoBytes(t *testing.T) {
	cpk, csk, err := Keypair("mayo2")
	require.NoError(t, err)

	msg := bytes.Repeat([]byte{0xAA}, 32)
	sig, err := SignMessage("mayo2", csk, msg)
	require.NoError(t, err)
	assert.Len(t, sig, MAYO2.SigBytes)

	signedMessage := append(append([]byte{}, sig...), msg...)
	got, ok, err := Open("mayo2", cpk, signedMessage)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, msg, got)
}

func TestTamperedSignatureFailsToOpen(t *testing.T) {
	cpk, csk, err := Keypair("mayo1")
	require.NoError(t, err)

	msg := []byte("The quick brown fox")
	sig, err := SignMessage("mayo1", csk, msg)
	require.NoError(t, err)

	tampered := append([]byte{}, sig...)
	tampered[0] ^= 0xFF

	signedMessage := append(append([]byte{}, tampered...), msg...)
	got, ok, err := Open("mayo1", cpk, signedMessage)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestOpenRejectsShortSignedMessage(t *testing.T) {
	cpk, _, err := Keypair("mayo1")
	require.NoError(t, err)

	_, ok, err := Open("mayo1", cpk, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeypairUnknownVariant(t *testing.T) {
	_, _, err := Keypair("mayo-nonexistent")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestSignMessageRejectsWrongKeyLength(t *testing.T) {
	_, err := SignMessage("mayo1", []byte{1, 2, 3}, []byte("hi"))
	assert.ErrorIs(t, err, ErrInvalidKeyFormat)
}

func TestCompactKeyGenProducesExpectedLengths(t *testing.T) {
	cpk, csk, err := CompactKeyGen(MAYO1)
	require.NoError(t, err)
	assert.Len(t, cpk, MAYO1.CpkBytes)
	assert.Len(t, csk, MAYO1.CskBytes)
}

func TestExpandSKAndExpandPKProduceExpectedLengths(t *testing.T) {
	cpk, csk, err := CompactKeyGen(MAYO1)
	require.NoError(t, err)

	esk, err := ExpandSK(MAYO1, csk)
	require.NoError(t, err)
	assert.Len(t, esk, MAYO1.EskBytes)

	epk, err := ExpandPK(MAYO1, cpk)
	require.NoError(t, err)
	assert.Len(t, epk, MAYO1.EpkBytes)
}

func BenchmarkCompactKeyGen(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = CompactKeyGen(MAYO1)
	}
}

func BenchmarkSignAndVerify(b *testing.B) {
	cpk, csk, err := Keypair("mayo1")
	require.NoError(b, err)
	msg := []byte("benchmark message")

	for i := 0; i < b.N; i++ {
		sig, err := SignMessage("mayo1", csk, msg)
		require.NoError(b, err)
		signedMessage := append(append([]byte{}, sig...), msg...)
		_, ok, err := Open("mayo1", cpk, signedMessage)
		require.NoError(b, err)
		require.True(b, ok)
	}
}
