// Package mayo implements the MAYO signature scheme's cryptographic
// core: key expansion, signing, and verification over F16, parameterized
// by a named variant.
package mayo

import (
	"fmt"
	"strings"

	"mayo-go/codec"
)

// Params is a variant's full parameter table: the values fixed by the
// MAYO parameter set plus every size derived from them. Variants are
// resolved by name at the API edge; there is no dynamic dispatch.
type Params struct {
	Name string

	Q int // field size, always 16
	N int // total variables
	O int // oil-variable count
	V int // vinegar count, N-O
	M int // number of quadratic equations
	K int // whipping factor from the MAYO parameter set; recorded but not consumed by this single-attempt core

	SkSeedBytes int
	PkSeedBytes int
	SaltBytes   int
	DigestBytes int

	OBytes int
	P1Bytes int
	P2Bytes int
	P3Bytes int
	LBytes  int

	CskBytes int
	CpkBytes int
	EskBytes int
	EpkBytes int
	SigBytes int
}

func newParams(name string, n, m, o, k, skSeedBytes, pkSeedBytes, saltBytes, digestBytes int) Params {
	v := n - o

	oBytes := codec.ByteLen(v * o)
	p1Bytes := m * codec.ByteLen(v*(v+1)/2)
	p2Bytes := m * codec.ByteLen(v*o)
	p3Bytes := m * codec.ByteLen(o*(o+1)/2)
	lBytes := m * codec.ByteLen(v*o)

	cskBytes := skSeedBytes
	cpkBytes := pkSeedBytes + p3Bytes
	eskBytes := skSeedBytes + oBytes + p1Bytes + lBytes
	epkBytes := p1Bytes + p2Bytes + p3Bytes
	sigBytes := codec.ByteLen(n) + saltBytes

	return Params{
		Name: name,
		Q:    16, N: n, O: o, V: v, M: m, K: k,
		SkSeedBytes: skSeedBytes, PkSeedBytes: pkSeedBytes,
		SaltBytes: saltBytes, DigestBytes: digestBytes,
		OBytes: oBytes, P1Bytes: p1Bytes, P2Bytes: p2Bytes, P3Bytes: p3Bytes, LBytes: lBytes,
		CskBytes: cskBytes, CpkBytes: cpkBytes, EskBytes: eskBytes, EpkBytes: epkBytes, SigBytes: sigBytes,
	}
}

// MAYO1 and MAYO2 are the two named variants of the MAYO parameter set.
// PkSeedBytes is fixed at 16, the AES-128 key length.
var (
	MAYO1 = newParams("MAYO1", 66, 64, 8, 9, 24, 16, 24, 32)
	MAYO2 = newParams("MAYO2", 78, 64, 18, 4, 24, 16, 24, 32)
)

var variantsByName = map[string]Params{
	"mayo1": MAYO1,
	"mayo2": MAYO2,
}

// ParamsByName resolves a variant by case-insensitive name.
func ParamsByName(name string) (Params, error) {
	p, ok := variantsByName[strings.ToLower(name)]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return p, nil
}
