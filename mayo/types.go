package mayo

// CompactSecretKey is the root secret: seed_sk, sk_seed_bytes long.
// It is a value-typed byte vector; an explicit Clone is provided for
// callers who need an independent copy.
type CompactSecretKey []byte

// Clone returns an independent copy.
func (k CompactSecretKey) Clone() CompactSecretKey {
	out := make(CompactSecretKey, len(k))
	copy(out, k)
	return out
}

// CompactPublicKey is seed_pk ∥ p3_bytes.
type CompactPublicKey []byte

// Clone returns an independent copy.
func (k CompactPublicKey) Clone() CompactPublicKey {
	out := make(CompactPublicKey, len(k))
	copy(out, k)
	return out
}

// ExpandedSecretKey is seed_sk ∥ O_bytes ∥ P1_all ∥ L_all. Expanded
// matrices are ephemeral: this value should live only for the duration
// of one sign call and be zeroized afterward with Zeroize.
type ExpandedSecretKey []byte

// Zeroize overwrites the key material in place. Call this when done
// signing with an expanded secret key.
func (k ExpandedSecretKey) Zeroize() {
	for i := range k {
		k[i] = 0
	}
}

// ExpandedPublicKey is P1_all ∥ P2_all ∥ P3_all.
type ExpandedPublicKey []byte

// Signature is s_bytes ∥ salt.
type Signature []byte

// Clone returns an independent copy.
func (s Signature) Clone() Signature {
	out := make(Signature, len(s))
	copy(out, s)
	return out
}
