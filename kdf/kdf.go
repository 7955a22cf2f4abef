// Package kdf wraps the two byte oracles the MAYO public map is built
// from: a SHAKE256 extensible-output function and an AES-128-CTR
// keystream. Both are specified here only by their contracts; the actual
// primitives come from golang.org/x/crypto/sha3 and crypto/aes.
package kdf

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// ErrRandomnessUnavailable wraps a failure to read from the process-wide
// secure random source.
var ErrRandomnessUnavailable = errors.New("kdf: secure randomness unavailable")

// RandReader is the process-wide cryptographically secure random source.
// Tests may swap it for a deterministic reader to drive reproducible
// pipelines; production code must never replace it with anything weaker
// than crypto/rand.Reader.
var RandReader io.Reader = rand.Reader

// SampleRandomBytes returns n cryptographically secure random bytes, or
// ErrRandomnessUnavailable if the source is exhausted or fails.
func SampleRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return buf, nil
}

// SHAKE256 returns outlen bytes of SHAKE256(inputs[0] || inputs[1] || ...).
func SHAKE256(outlen int, inputs ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, in := range inputs {
		_, _ = h.Write(in)
	}
	out := make([]byte, outlen)
	_, _ = h.Read(out)
	return out
}

// AES128CTR returns outlen bytes of the AES-128 CTR keystream under key,
// with a 16-byte all-zero initial block (the counter is the block's last
// four bytes, big-endian, starting at zero — handled by crypto/cipher's
// big-endian counter convention on an all-zero IV).
func AES128CTR(key []byte, outlen int) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("kdf: aes key setup: %w", err)
	}
	var iv [aes.BlockSize]byte
	stream := cipher.NewCTR(block, iv[:])
	out := make([]byte, outlen)
	stream.XORKeyStream(out, out)
	return out, nil
}

// DerivePkSeedAndO expands seed_sk into (seed_pk, O_bytes) via a single
// SHAKE256 stream, per MAYO's CompactKeyGen step 2.
func DerivePkSeedAndO(seedSK []byte, pkSeedBytes, oBytes int) (seedPK, o []byte) {
	s := SHAKE256(pkSeedBytes+oBytes, seedSK)
	return s[:pkSeedBytes], s[pkSeedBytes:]
}

// DeriveP3 expands seed_pk into p3Bytes bytes of P3 material.
func DeriveP3(seedPK []byte, p3Bytes int) []byte {
	return SHAKE256(p3Bytes, seedPK)
}

// DeriveP1AndP2 expands seed_pk (which must be 16 bytes, the AES-128 key
// length) into the P1 and P2 byte regions via a single AES-128-CTR
// keystream: P2 begins at the first whole AES block at or after the end
// of P1.
func DeriveP1AndP2(seedPK []byte, p1Bytes, p2Bytes int) (p1, p2 []byte, err error) {
	if len(seedPK) != 16 {
		return nil, nil, fmt.Errorf("kdf: seed_pk must be 16 bytes, got %d", len(seedPK))
	}
	total := roundUpToBlock(p1Bytes) + p2Bytes
	stream, err := AES128CTR(seedPK, total)
	if err != nil {
		return nil, nil, err
	}
	return stream[:p1Bytes], stream[roundUpToBlock(p1Bytes) : roundUpToBlock(p1Bytes)+p2Bytes], nil
}

func roundUpToBlock(n int) int {
	return ((n + aes.BlockSize - 1) / aes.BlockSize) * aes.BlockSize
}

// DeriveTargetT derives the target vector bytes from a message digest and
// a signature salt.
func DeriveTargetT(digest, salt []byte, outlen int) []byte {
	return SHAKE256(outlen, digest, salt)
}

// DigestMessage returns the digestBytes-long SHAKE256 digest of msg.
func DigestMessage(msg []byte, digestBytes int) []byte {
	return SHAKE256(digestBytes, msg)
}
