package group

import "math/big"

// ReduceWide reduces a 64-byte little-endian integer modulo the group order
// ℓ, returning a 32-byte little-endian scalar (spec.md §4.E). The 64 random
// bytes behind the ephemeral key and the 64-byte password hash are both
// wider than ℓ, so both pass through here before use.
func ReduceWide(x [64]byte) [32]byte {
	v := leBytesToBig(x[:])
	v.Mod(v, orderL)
	return bigToLE32(v)
}

// ReduceNarrow reduces a 32-byte little-endian integer modulo ℓ. Used when
// a value already fits in 32 bytes but may not be fully reduced (e.g. a
// hash truncated to 32 bytes).
func ReduceNarrow(x [32]byte) [32]byte {
	v := leBytesToBig(x[:])
	v.Mod(v, orderL)
	return bigToLE32(v)
}

func leBytesToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}

func bigToLE32(v *big.Int) [32]byte {
	be := v.Bytes()
	var out [32]byte
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	return out
}

// Scalar is a 32-byte little-endian integer used by the password-scalar
// hack (spec.md §4.F): the handful of additions it needs operate directly
// on the byte representation rather than going through *big.Int, so the
// arithmetic stays the same shape as the rest of this package.
type Scalar [32]byte

// Add sets s = a + b as 256-bit little-endian integers, discarding any
// carry out of the top byte. The password scalar never approaches 2^256,
// so the discarded carry never fires in practice; it is not relied upon as
// a reduction step.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	var carry uint16
	for i := 0; i < 32; i++ {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		s[i] = byte(sum)
		carry = sum >> 8
	}
	return s
}

// Dbl sets s = 2*a, i.e. a + a.
func (s *Scalar) Dbl(a *Scalar) *Scalar {
	return s.Add(a, a)
}

// CMove sets s = u wherever mask's bits are 1, leaving the corresponding
// bits of s unchanged wherever mask's bits are 0 (spec.md §4.C: "cmov(src,
// mask) selects bytewise on a 32-bit mask expanded 8 times across the 32
// bytes"). mask's 4 little-endian bytes are tiled 8 times to cover all 32
// bytes of s and u, then combined bytewise as s[i] ^= tiled[i] & (s[i] ^
// u[i]). A caller that wants plain 0/1 selection passes mask = 0 or
// 0xFFFFFFFF.
func (s *Scalar) CMove(u *Scalar, mask uint32) *Scalar {
	var word [4]byte
	word[0] = byte(mask)
	word[1] = byte(mask >> 8)
	word[2] = byte(mask >> 16)
	word[3] = byte(mask >> 24)
	for i := 0; i < 32; i++ {
		s[i] ^= word[i%4] & (s[i] ^ u[i])
	}
	return s
}

// orderLScalar is ℓ itself, as a Scalar, used by the password-scalar hack
// below.
var orderLScalar = Scalar(bigToLE32(orderL))

// AddOrderMultiple conditionally sets s = a + ℓ*multiple, where multiple is
// 1, 2 or 4, leaving s equal to a when cond != 1. It runs the same
// doublings and the same CMove regardless of cond, so the password-scalar
// hack (spec.md §4.F) can call it for each of the three low bits of the
// password scalar without branching on secret data.
func AddOrderMultiple(s, a *Scalar, multiple uint, cond int32) {
	term := orderLScalar
	for term2 := uint(1); term2 < multiple; term2 <<= 1 {
		var doubled Scalar
		doubled.Dbl(&term)
		term = doubled
	}

	var withTerm Scalar
	withTerm.Add(a, &term)

	*s = *a
	s.CMove(&withTerm, uint32(-cond))
}
