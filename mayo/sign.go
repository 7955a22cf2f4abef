package mayo

import (
	"fmt"

	"mayo-go/codec"
	"mayo-go/gf16"
	"mayo-go/kdf"
	"mayo-go/matrix"
)

// Sign implements Algorithm 8: derive a target from the message digest
// and a fresh salt, sample vinegar variables, linearize the public map in
// the oil variables, and solve. Retries with fresh randomness up to
// MaxSignRetries when the linearized system has no unique solution.
func Sign(p Params, esk ExpandedSecretKey, msg []byte) (Signature, error) {
	sk, err := parseExpandedSecretKey(p, esk)
	if err != nil {
		return nil, err
	}
	defer sk.Zeroize()

	digest := kdf.DigestMessage(msg, p.DigestBytes)

	for attempt := 0; attempt < MaxSignRetries; attempt++ {
		sig, ok, err := signAttempt(p, sk, digest)
		if err != nil {
			return nil, err
		}
		if ok {
			return sig, nil
		}
	}
	return nil, ErrSignRetriesExhausted
}

func signAttempt(p Params, sk *expandedSecretMaterial, digest []byte) (Signature, bool, error) {
	salt, err := kdf.SampleRandomBytes(p.SaltBytes)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrKeygenRandomnessUnavailable, err)
	}

	tBytes := kdf.DeriveTargetT(digest, salt, codec.ByteLen(p.M))
	t, err := codec.DecodeVec(tBytes, p.M)
	if err != nil {
		return nil, false, err
	}

	sV, err := sampleVinegar(p.V)
	if err != nil {
		return nil, false, err
	}

	a := matrix.New(p.M, p.O)
	yPrime := make([]gf16.Elem, p.M)
	for i := 0; i < p.M; i++ {
		yi, err := matrix.QuadraticForm(sV, sk.p1[i])
		if err != nil {
			return nil, false, err
		}
		yPrime[i] = yi

		row, err := matrix.VecMat(sV, sk.l[i])
		if err != nil {
			return nil, false, err
		}
		copy(a.Row(i), row)
	}

	target, err := matrix.VecSub(t, yPrime)
	if err != nil {
		return nil, false, err
	}

	sol, status, err := matrix.Solve(a, target)
	if err != nil {
		return nil, false, err
	}
	if status != matrix.Unique {
		return nil, false, nil
	}

	s := make([]gf16.Elem, p.N)
	copy(s, sV)
	copy(s[p.V:], sol)

	sig := make(Signature, 0, p.SigBytes)
	sig = append(sig, codec.EncodeVec(s)...)
	sig = append(sig, salt...)
	return sig, true, nil
}

// sampleVinegar draws v independent uniform GF(16) samples, each taken
// from the low nibble of a fresh random byte.
func sampleVinegar(v int) ([]gf16.Elem, error) {
	raw, err := kdf.SampleRandomBytes(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeygenRandomnessUnavailable, err)
	}
	out := make([]gf16.Elem, v)
	for i, b := range raw {
		out[i] = b & 0xf
	}
	return out, nil
}
