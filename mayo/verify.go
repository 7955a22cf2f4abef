package mayo

import (
	"crypto/subtle"
	"fmt"

	"mayo-go/codec"
	"mayo-go/gf16"
	"mayo-go/kdf"
	"mayo-go/matrix"
)

// Verify implements Algorithm 9: evaluate the public map P*(s) at the
// signature's claimed solution and compare it, in constant time, against
// the target derived from the message digest and salt.
func Verify(p Params, epk ExpandedPublicKey, msg []byte, sig Signature) (bool, error) {
	pk, err := parseExpandedPublicKey(p, epk)
	if err != nil {
		return false, err
	}

	if len(sig) != p.SigBytes {
		return false, fmt.Errorf("%w: expected signature of %d bytes, got %d", ErrInvalidSignatureFormat, p.SigBytes, len(sig))
	}
	sBytes := sig[:codec.ByteLen(p.N)]
	salt := sig[codec.ByteLen(p.N):]

	s, err := codec.DecodeVec(sBytes, p.N)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidSignatureFormat, err)
	}

	digest := kdf.DigestMessage(msg, p.DigestBytes)
	tBytes := kdf.DeriveTargetT(digest, salt, codec.ByteLen(p.M))
	t, err := codec.DecodeVec(tBytes, p.M)
	if err != nil {
		return false, err
	}

	sV := s[:p.V]
	sO := s[p.V:]

	y := make([]gf16.Elem, p.M)
	for i := 0; i < p.M; i++ {
		vv, err := matrix.QuadraticForm(sV, pk.p1[i])
		if err != nil {
			return false, err
		}

		p2sO, err := matrix.MatVec(pk.p2[i], sO)
		if err != nil {
			return false, err
		}
		vo, err := matrix.Dot(sV, p2sO)
		if err != nil {
			return false, err
		}

		oo, err := matrix.QuadraticForm(sO, pk.p3[i])
		if err != nil {
			return false, err
		}

		y[i] = gf16.Add(gf16.Add(vv, vo), oo)
	}

	return constantTimeEqual(y, t), nil
}

func constantTimeEqual(a, b []gf16.Elem) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
