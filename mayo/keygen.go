package mayo

import (
	"fmt"

	"mayo-go/codec"
	"mayo-go/kdf"
	"mayo-go/matrix"
)

// CompactKeyGen samples a fresh seed_sk and derives the matching compact
// public key, per MAYO's CompactKeyGen.
func CompactKeyGen(p Params) (CompactPublicKey, CompactSecretKey, error) {
	seedSK, err := kdf.SampleRandomBytes(p.SkSeedBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeygenRandomnessUnavailable, err)
	}

	seedPK, _ := kdf.DerivePkSeedAndO(seedSK, p.PkSeedBytes, p.OBytes)
	p3Bytes := kdf.DeriveP3(seedPK, p.P3Bytes)

	cpk := make(CompactPublicKey, 0, p.CpkBytes)
	cpk = append(cpk, seedPK...)
	cpk = append(cpk, p3Bytes...)

	return cpk, CompactSecretKey(seedSK), nil
}

// ExpandSK expands a compact secret key into its full byte layout:
// seed_sk ∥ O_bytes ∥ P1_all ∥ L_all, per MAYO's ExpandSK.
func ExpandSK(p Params, csk CompactSecretKey) (ExpandedSecretKey, error) {
	if len(csk) != p.SkSeedBytes {
		return nil, fmt.Errorf("%w: expected seed_sk of %d bytes, got %d", ErrInvalidKeyFormat, p.SkSeedBytes, len(csk))
	}

	seedPK, oBytes := kdf.DerivePkSeedAndO(csk, p.PkSeedBytes, p.OBytes)
	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, p.P1Bytes, p.P2Bytes)
	if err != nil {
		return nil, err
	}

	o, err := codec.DecodeDense(oBytes, p.V, p.O)
	if err != nil {
		return nil, err
	}
	p1Raw, err := codec.DecodeTriangularMatricesRaw(p1All, p.M, p.V)
	if err != nil {
		return nil, err
	}
	p2, err := codec.DecodeDenseMatrices(p2All, p.M, p.V, p.O)
	if err != nil {
		return nil, err
	}

	lMatrices := make([]matrix.Matrix, p.M)
	for i := 0; i < p.M; i++ {
		// L_i = (P1_i + P1_i^T) * O + P2_i, computed from the raw
		// (unmirrored) upper-triangular view of P1_i: see
		// codec.DecodeUpperTriangularRaw.
		sym, err := matrix.Symmetrize(p1Raw[i])
		if err != nil {
			return nil, err
		}
		symO, err := matrix.Mul(sym, o)
		if err != nil {
			return nil, err
		}
		li, err := matrix.Add(symO, p2[i])
		if err != nil {
			return nil, err
		}
		lMatrices[i] = li
	}
	lAll := codec.EncodeDenseMatrices(lMatrices)

	esk := make(ExpandedSecretKey, 0, p.EskBytes)
	esk = append(esk, csk...)
	esk = append(esk, oBytes...)
	esk = append(esk, p1All...)
	esk = append(esk, lAll...)
	return esk, nil
}

// ExpandPK expands a compact public key into P1_all ∥ P2_all ∥ P3_all,
// per MAYO's ExpandPK.
func ExpandPK(p Params, cpk CompactPublicKey) (ExpandedPublicKey, error) {
	if len(cpk) != p.CpkBytes {
		return nil, fmt.Errorf("%w: expected compact public key of %d bytes, got %d", ErrInvalidKeyFormat, p.CpkBytes, len(cpk))
	}
	seedPK := cpk[:p.PkSeedBytes]
	p3Bytes := cpk[p.PkSeedBytes:]

	p1All, p2All, err := kdf.DeriveP1AndP2(seedPK, p.P1Bytes, p.P2Bytes)
	if err != nil {
		return nil, err
	}

	epk := make(ExpandedPublicKey, 0, p.EpkBytes)
	epk = append(epk, p1All...)
	epk = append(epk, p2All...)
	epk = append(epk, p3Bytes...)
	return epk, nil
}

// expandedSecretMaterial is the decoded form of an ExpandedSecretKey,
// used internally by Sign.
type expandedSecretMaterial struct {
	seedSK []byte
	o      matrix.Matrix
	p1     []matrix.Matrix // mirrored symmetric, for the quadratic form
	l      []matrix.Matrix
}

// Zeroize overwrites every decoded secret matrix's backing storage.
// esk.Zeroize only wipes the packed key bytes this material was decoded
// from; the decoded O, P1, and L matrices are independent allocations
// and must be wiped separately.
func (m *expandedSecretMaterial) Zeroize() {
	m.o.Zeroize()
	for i := range m.p1 {
		m.p1[i].Zeroize()
	}
	for i := range m.l {
		m.l[i].Zeroize()
	}
}

func parseExpandedSecretKey(p Params, esk ExpandedSecretKey) (*expandedSecretMaterial, error) {
	if len(esk) != p.EskBytes {
		return nil, fmt.Errorf("%w: expected expanded secret key of %d bytes, got %d", ErrInvalidKeyFormat, p.EskBytes, len(esk))
	}
	off := 0
	seedSK := esk[off : off+p.SkSeedBytes]
	off += p.SkSeedBytes
	oBytes := esk[off : off+p.OBytes]
	off += p.OBytes
	p1All := esk[off : off+p.P1Bytes]
	off += p.P1Bytes
	lAll := esk[off : off+p.LBytes]

	o, err := codec.DecodeDense(oBytes, p.V, p.O)
	if err != nil {
		return nil, err
	}
	p1, err := codec.DecodeTriangularMatrices(p1All, p.M, p.V)
	if err != nil {
		return nil, err
	}
	l, err := codec.DecodeDenseMatrices(lAll, p.M, p.V, p.O)
	if err != nil {
		return nil, err
	}

	return &expandedSecretMaterial{seedSK: seedSK, o: o, p1: p1, l: l}, nil
}

// expandedPublicMaterial is the decoded form of an ExpandedPublicKey,
// used internally by Verify.
type expandedPublicMaterial struct {
	p1 []matrix.Matrix
	p2 []matrix.Matrix
	p3 []matrix.Matrix
}

func parseExpandedPublicKey(p Params, epk ExpandedPublicKey) (*expandedPublicMaterial, error) {
	if len(epk) != p.EpkBytes {
		return nil, fmt.Errorf("%w: expected expanded public key of %d bytes, got %d", ErrInvalidKeyFormat, p.EpkBytes, len(epk))
	}
	off := 0
	p1All := epk[off : off+p.P1Bytes]
	off += p.P1Bytes
	p2All := epk[off : off+p.P2Bytes]
	off += p.P2Bytes
	p3All := epk[off : off+p.P3Bytes]

	p1, err := codec.DecodeTriangularMatrices(p1All, p.M, p.V)
	if err != nil {
		return nil, err
	}
	p2, err := codec.DecodeDenseMatrices(p2All, p.M, p.V, p.O)
	if err != nil {
		return nil, err
	}
	p3, err := codec.DecodeTriangularMatrices(p3All, p.M, p.O)
	if err != nil {
		return nil, err
	}

	return &expandedPublicMaterial{p1: p1, p2: p2, p3: p3}, nil
}
