package mayo

import "fmt"

// Keypair generates a compact key pair for the named variant
// ("mayo1"/"mayo2", case-insensitive).
func Keypair(variant string) (cpk CompactPublicKey, csk CompactSecretKey, err error) {
	p, err := ParamsByName(variant)
	if err != nil {
		return nil, nil, err
	}
	return CompactKeyGen(p)
}

// SignMessage expands cskBytes and signs msg under the named variant,
// returning the raw signature bytes.
func SignMessage(variant string, cskBytes, msg []byte) ([]byte, error) {
	p, err := ParamsByName(variant)
	if err != nil {
		return nil, err
	}
	if len(cskBytes) != p.SkSeedBytes {
		return nil, fmt.Errorf("%w: expected secret key of %d bytes, got %d", ErrInvalidKeyFormat, p.SkSeedBytes, len(cskBytes))
	}

	esk, err := ExpandSK(p, CompactSecretKey(cskBytes))
	if err != nil {
		return nil, err
	}
	defer esk.Zeroize()

	sig, err := Sign(p, esk, msg)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

// Open verifies signedMessage = signature ∥ originalMessage against cpkBytes
// under the named variant. It returns the original message and true on
// success. A signed message shorter than a signature, or one whose
// signature does not verify, gives (nil, false) with no error; an
// unknown variant or a public key of the wrong length is an error.
func Open(variant string, cpkBytes, signedMessage []byte) ([]byte, bool, error) {
	p, err := ParamsByName(variant)
	if err != nil {
		return nil, false, err
	}
	if len(cpkBytes) != p.CpkBytes {
		return nil, false, fmt.Errorf("%w: expected public key of %d bytes, got %d", ErrInvalidKeyFormat, p.CpkBytes, len(cpkBytes))
	}
	if len(signedMessage) < p.SigBytes {
		return nil, false, nil
	}

	sig := Signature(signedMessage[:p.SigBytes])
	msg := signedMessage[p.SigBytes:]

	epk, err := ExpandPK(p, CompactPublicKey(cpkBytes))
	if err != nil {
		return nil, false, err
	}

	valid, err := Verify(p, epk, msg, sig)
	if err != nil {
		return nil, false, err
	}
	if !valid {
		return nil, false, nil
	}
	return msg, true, nil
}
