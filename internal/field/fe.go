// Package field implements arithmetic in the prime field GF(p), p = 2^255-19,
// using the ten-limb radix-2^25.5 representation documented in the ref10
// lineage of Ed25519 implementations (limbs 0,2,4,6,8 hold values below
// 2^26; limbs 1,3,5,7,9 hold values below 2^25). This layout is the one
// BoringSSL's edwards25519 tables are built against, which is why the
// SPAKE2 layer above needs it rather than a more modern 51-bit/5-limb or
// Montgomery-domain representation.
package field

import "math/big"

// Element is an integer modulo p = 2^255-19, stored across ten signed
// 32-bit limbs. The zero value is the field element 0. Limbs may briefly
// exceed their nominal bit width between operations (see Carry); callers
// that need a canonical encoding must go through Bytes, which carries
// internally.
type Element [10]int32

// Zero sets e = 0 and returns e.
func (e *Element) Zero() *Element {
	*e = Element{}
	return e
}

// One sets e = 1 and returns e.
func (e *Element) One() *Element {
	*e = Element{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return e
}

// Set sets e = a and returns e.
func (e *Element) Set(a *Element) *Element {
	*e = *a
	return e
}

// Add sets e = a + b and returns e. The result's limbs are not carried;
// callers chaining several additions before a multiply, square, or Bytes
// call are relying on the ~1-bit headroom ref10 leaves in each limb.
func (e *Element) Add(a, b *Element) *Element {
	for i := range e {
		e[i] = a[i] + b[i]
	}
	return e
}

// Sub sets e = a - b and returns e. Same carry discipline as Add.
func (e *Element) Sub(a, b *Element) *Element {
	for i := range e {
		e[i] = a[i] - b[i]
	}
	return e
}

// Neg sets e = -a and returns e.
func (e *Element) Neg(a *Element) *Element {
	var zero Element
	return e.Sub(&zero, a)
}

// CMove sets e = u if flag == 1, leaves e unchanged if flag == 0. flag must
// be 0 or 1; any other value is undefined. The selection is done with an
// XOR-and-mask over every limb so it takes the same path regardless of
// flag's value.
func (e *Element) CMove(u *Element, flag int32) *Element {
	mask := -flag
	for i := range e {
		e[i] ^= mask & (e[i] ^ u[i])
	}
	return e
}

// Equal reports whether e and a encode to the same canonical value.
func (e *Element) Equal(a *Element) bool {
	eb := e.Bytes()
	ab := a.Bytes()
	var diff byte
	for i := range eb {
		diff |= eb[i] ^ ab[i]
	}
	return diff == 0
}

// IsNegative returns the low bit of e's canonical encoding (byte 0), used
// by point decompression/compression to track the sign of x.
func (e *Element) IsNegative() int32 {
	b := e.Bytes()
	return int32(b[0] & 1)
}

// IsNonZero reports whether e's canonical encoding is nonzero.
func (e *Element) IsNonZero() bool {
	b := e.Bytes()
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc != 0
}

func load3(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

func load4(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}

// FromBytes decodes the little-endian encoding src, clearing the top bit of
// byte 31 (that bit is reserved for a point's sign in compressed-point
// encodings and carries no field-element meaning).
func FromBytes(src *[32]byte) *Element {
	h0 := load4(src[0:])
	h1 := load3(src[4:]) << 6
	h2 := load3(src[7:]) << 5
	h3 := load3(src[10:]) << 3
	h4 := load3(src[13:]) << 2
	h5 := load4(src[16:])
	h6 := load3(src[20:]) << 7
	h7 := load3(src[23:]) << 5
	h8 := load3(src[26:]) << 4
	h9 := (load3(src[29:]) & 0x7fffff) << 2

	var c9, c1, c3, c5, c7, c0, c2, c4, c6, c8 int64

	c9 = (h9 + (1 << 24)) >> 25
	h0 += c9 * 19
	h9 -= c9 << 25
	c1 = (h1 + (1 << 24)) >> 25
	h2 += c1
	h1 -= c1 << 25
	c3 = (h3 + (1 << 24)) >> 25
	h4 += c3
	h3 -= c3 << 25
	c5 = (h5 + (1 << 24)) >> 25
	h6 += c5
	h5 -= c5 << 25
	c7 = (h7 + (1 << 24)) >> 25
	h8 += c7
	h7 -= c7 << 25

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26
	c2 = (h2 + (1 << 25)) >> 26
	h3 += c2
	h2 -= c2 << 26
	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26
	c6 = (h6 + (1 << 25)) >> 26
	h7 += c6
	h6 -= c6 << 26
	c8 = (h8 + (1 << 25)) >> 26
	h9 += c8
	h8 -= c8 << 26

	return &Element{
		int32(h0), int32(h1), int32(h2), int32(h3), int32(h4),
		int32(h5), int32(h6), int32(h7), int32(h8), int32(h9),
	}
}

// Bytes returns the canonical little-endian encoding of e: e is first fully
// carried and reduced below p, then packed into 32 bytes. Byte 31's high
// bit is always 0 here; callers building a compressed point encoding OR in
// a sign bit afterwards.
func (e *Element) Bytes() [32]byte {
	h0, h1, h2, h3, h4 := int32(e[0]), int32(e[1]), int32(e[2]), int32(e[3]), int32(e[4])
	h5, h6, h7, h8, h9 := int32(e[5]), int32(e[6]), int32(e[7]), int32(e[8]), int32(e[9])

	q := (19*h9 + (1 << 24)) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	h0 += 19 * q

	var c0, c1, c2, c3, c4, c5, c6, c7, c8, c9 int32

	c0 = h0 >> 26
	h1 += c0
	h0 -= c0 << 26
	c1 = h1 >> 25
	h2 += c1
	h1 -= c1 << 25
	c2 = h2 >> 26
	h3 += c2
	h2 -= c2 << 26
	c3 = h3 >> 25
	h4 += c3
	h3 -= c3 << 25
	c4 = h4 >> 26
	h5 += c4
	h4 -= c4 << 26
	c5 = h5 >> 25
	h6 += c5
	h5 -= c5 << 25
	c6 = h6 >> 26
	h7 += c6
	h6 -= c6 << 26
	c7 = h7 >> 25
	h8 += c7
	h7 -= c7 << 25
	c8 = h8 >> 26
	h9 += c8
	h8 -= c8 << 26
	c9 = h9 >> 25
	h9 -= c9 << 25

	var s [32]byte
	s[0] = byte(h0 >> 0)
	s[1] = byte(h0 >> 8)
	s[2] = byte(h0 >> 16)
	s[3] = byte((h0 >> 24) | (h1 << 2))
	s[4] = byte(h1 >> 6)
	s[5] = byte(h1 >> 14)
	s[6] = byte((h1 >> 22) | (h2 << 3))
	s[7] = byte(h2 >> 5)
	s[8] = byte(h2 >> 13)
	s[9] = byte((h2 >> 21) | (h3 << 5))
	s[10] = byte(h3 >> 3)
	s[11] = byte(h3 >> 11)
	s[12] = byte((h3 >> 19) | (h4 << 6))
	s[13] = byte(h4 >> 2)
	s[14] = byte(h4 >> 10)
	s[15] = byte(h4 >> 18)
	s[16] = byte(h5 >> 0)
	s[17] = byte(h5 >> 8)
	s[18] = byte(h5 >> 16)
	s[19] = byte((h5 >> 24) | (h6 << 1))
	s[20] = byte(h6 >> 7)
	s[21] = byte(h6 >> 15)
	s[22] = byte((h6 >> 23) | (h7 << 3))
	s[23] = byte(h7 >> 5)
	s[24] = byte(h7 >> 13)
	s[25] = byte((h7 >> 21) | (h8 << 4))
	s[26] = byte(h8 >> 4)
	s[27] = byte(h8 >> 12)
	s[28] = byte((h8 >> 20) | (h9 << 6))
	s[29] = byte(h9 >> 2)
	s[30] = byte(h9 >> 10)
	s[31] = byte(h9 >> 18)
	return s
}

// Mul sets e = a*b mod p and returns e.
func (e *Element) Mul(a, b *Element) *Element {
	f0, f1, f2, f3, f4 := int64(a[0]), int64(a[1]), int64(a[2]), int64(a[3]), int64(a[4])
	f5, f6, f7, f8, f9 := int64(a[5]), int64(a[6]), int64(a[7]), int64(a[8]), int64(a[9])

	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	g0, g1, g2, g3, g4 := int64(b[0]), int64(b[1]), int64(b[2]), int64(b[3]), int64(b[4])
	g5, g6, g7, g8, g9 := int64(b[5]), int64(b[6]), int64(b[7]), int64(b[8]), int64(b[9])

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9

	h0 := f0*g0 + f1_2*g9_19 + f2*g8_19 + f3_2*g7_19 + f4*g6_19 + f5_2*g5_19 + f6*g4_19 + f7_2*g3_19 + f8*g2_19 + f9_2*g1_19
	h1 := f0*g1 + f1*g0 + f2*g9_19 + f3*g8_19 + f4*g7_19 + f5*g6_19 + f6*g5_19 + f7*g4_19 + f8*g3_19 + f9*g2_19
	h2 := f0*g2 + f1_2*g1 + f2*g0 + f3_2*g9_19 + f4*g8_19 + f5_2*g7_19 + f6*g6_19 + f7_2*g5_19 + f8*g4_19 + f9_2*g3_19
	h3 := f0*g3 + f1*g2 + f2*g1 + f3*g0 + f4*g9_19 + f5*g8_19 + f6*g7_19 + f7*g6_19 + f8*g5_19 + f9*g4_19
	h4 := f0*g4 + f1_2*g3 + f2*g2 + f3_2*g1 + f4*g0 + f5_2*g9_19 + f6*g8_19 + f7_2*g7_19 + f8*g6_19 + f9_2*g5_19
	h5 := f0*g5 + f1*g4 + f2*g3 + f3*g2 + f4*g1 + f5*g0 + f6*g9_19 + f7*g8_19 + f8*g7_19 + f9*g6_19
	h6 := f0*g6 + f1_2*g5 + f2*g4 + f3_2*g3 + f4*g2 + f5_2*g1 + f6*g0 + f7_2*g9_19 + f8*g8_19 + f9_2*g7_19
	h7 := f0*g7 + f1*g6 + f2*g5 + f3*g4 + f4*g3 + f5*g2 + f6*g1 + f7*g0 + f8*g9_19 + f9*g8_19
	h8 := f0*g8 + f1_2*g7 + f2*g6 + f3_2*g5 + f4*g4 + f5_2*g3 + f6*g2 + f7_2*g1 + f8*g0 + f9_2*g9_19
	h9 := f0*g9 + f1*g8 + f2*g7 + f3*g6 + f4*g5 + f5*g4 + f6*g3 + f7*g2 + f8*g1 + f9*g0

	carryMulChain(e, h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
	return e
}

// Square sets e = a*a mod p and returns e.
func (e *Element) Square(a *Element) *Element {
	h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 := squareCore(a, false)
	carryMulChain(e, h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
	return e
}

// SquareAndDouble sets e = 2*a*a mod p and returns e.
func (e *Element) SquareAndDouble(a *Element) *Element {
	h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 := squareCore(a, true)
	carryMulChain(e, h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
	return e
}

func squareCore(f *Element, double bool) (h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) {
	f0, f1, f2, f3, f4 := int64(f[0]), int64(f[1]), int64(f[2]), int64(f[3]), int64(f[4])
	f5, f6, f7, f8, f9 := int64(f[5]), int64(f[6]), int64(f[7]), int64(f[8]), int64(f[9])

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7

	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	f0f0 := f0 * f0
	f0f1_2 := f0_2 * f1
	f0f2_2 := f0_2 * f2
	f0f3_2 := f0_2 * f3
	f0f4_2 := f0_2 * f4
	f0f5_2 := f0_2 * f5
	f0f6_2 := f0_2 * f6
	f0f7_2 := f0_2 * f7
	f0f8_2 := f0_2 * f8
	f0f9_2 := f0_2 * f9
	f1f1_2 := f1_2 * f1
	f1f2_2 := f1_2 * f2
	f1f3_4 := f1_2 * f3_2
	f1f4_2 := f1_2 * f4
	f1f5_4 := f1_2 * f5_2
	f1f6_2 := f1_2 * f6
	f1f7_4 := f1_2 * f7_2
	f1f8_2 := f1_2 * f8
	f1f9_76 := f1_2 * f9_38
	f2f2 := f2 * f2
	f2f3_2 := f2_2 * f3
	f2f4_2 := f2_2 * f4
	f2f5_2 := f2_2 * f5
	f2f6_2 := f2_2 * f6
	f2f7_2 := f2_2 * f7
	f2f8_38 := f2_2 * f8_19
	f2f9_38 := f2 * f9_38
	f3f3_2 := f3_2 * f3
	f3f4_2 := f3_2 * f4
	f3f5_4 := f3_2 * f5_2
	f3f6_2 := f3_2 * f6
	f3f7_76 := f3_2 * f7_38
	f3f8_38 := f3_2 * f8_19
	f3f9_76 := f3_2 * f9_38
	f4f4 := f4 * f4
	f4f5_2 := f4_2 * f5
	f4f6_38 := f4_2 * f6_19
	f4f7_38 := f4 * f7_38
	f4f8_38 := f4_2 * f8_19
	f4f9_38 := f4 * f9_38
	f5f5_38 := f5 * f5_38
	f5f6_38 := f5_2 * f6_19
	f5f7_76 := f5_2 * f7_38
	f5f8_38 := f5_2 * f8_19
	f5f9_76 := f5_2 * f9_38
	f6f6_19 := f6 * f6_19
	f6f7_38 := f6 * f7_38
	f6f8_38 := f6_2 * f8_19
	f6f9_38 := f6 * f9_38
	f7f7_38 := f7 * f7_38
	f7f8_38 := f7_2 * f8_19
	f7f9_76 := f7_2 * f9_38
	f8f8_19 := f8 * f8_19
	f8f9_38 := f8 * f9_38
	f9f9_38 := f9 * f9_38

	h0 = f0f0 + f1f9_76 + f2f8_38 + f3f7_76 + f4f6_38 + f5f5_38
	h1 = f0f1_2 + f2f9_38 + f3f8_38 + f4f7_38 + f5f6_38
	h2 = f0f2_2 + f1f1_2 + f3f9_76 + f4f8_38 + f5f7_76 + f6f6_19
	h3 = f0f3_2 + f1f2_2 + f4f9_38 + f5f8_38 + f6f7_38
	h4 = f0f4_2 + f1f3_4 + f2f2 + f5f9_76 + f6f8_38 + f7f7_38
	h5 = f0f5_2 + f1f4_2 + f2f3_2 + f6f9_38 + f7f8_38
	h6 = f0f6_2 + f1f5_4 + f2f4_2 + f3f3_2 + f7f9_76 + f8f8_19
	h7 = f0f7_2 + f1f6_2 + f2f5_2 + f3f4_2 + f8f9_38
	h8 = f0f8_2 + f1f7_4 + f2f6_2 + f3f5_4 + f4f4 + f9f9_38
	h9 = f0f9_2 + f1f8_2 + f2f7_2 + f3f6_2 + f4f5_2

	if double {
		h0, h1, h2, h3, h4 = 2*h0, 2*h1, 2*h2, 2*h3, 2*h4
		h5, h6, h7, h8, h9 = 2*h5, 2*h6, 2*h7, 2*h8, 2*h9
	}
	return
}

// carryMulChain propagates the carry chain shared by Mul/Square/SquareAndDouble
// across raw 64-bit limb products and stores the normalized result into dst.
func carryMulChain(dst *Element, h0, h1, h2, h3, h4, h5, h6, h7, h8, h9 int64) {
	var c0, c1, c2, c3, c4, c5, c6, c7, c8, c9 int64

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26
	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26

	c1 = (h1 + (1 << 24)) >> 25
	h2 += c1
	h1 -= c1 << 25
	c5 = (h5 + (1 << 24)) >> 25
	h6 += c5
	h5 -= c5 << 25

	c2 = (h2 + (1 << 25)) >> 26
	h3 += c2
	h2 -= c2 << 26
	c6 = (h6 + (1 << 25)) >> 26
	h7 += c6
	h6 -= c6 << 26

	c3 = (h3 + (1 << 24)) >> 25
	h4 += c3
	h3 -= c3 << 25
	c7 = (h7 + (1 << 24)) >> 25
	h8 += c7
	h7 -= c7 << 25

	c4 = (h4 + (1 << 25)) >> 26
	h5 += c4
	h4 -= c4 << 26
	c8 = (h8 + (1 << 25)) >> 26
	h9 += c8
	h8 -= c8 << 26

	c9 = (h9 + (1 << 24)) >> 25
	h0 += c9 * 19
	h9 -= c9 << 25

	c0 = (h0 + (1 << 25)) >> 26
	h1 += c0
	h0 -= c0 << 26

	dst[0] = int32(h0)
	dst[1] = int32(h1)
	dst[2] = int32(h2)
	dst[3] = int32(h3)
	dst[4] = int32(h4)
	dst[5] = int32(h5)
	dst[6] = int32(h6)
	dst[7] = int32(h7)
	dst[8] = int32(h8)
	dst[9] = int32(h9)
}

// Carry normalizes e's limbs into the alternating 26/25-bit canonical
// ranges, wrapping the final excess back through limb 0 via the p =
// 2^255-19 identity. It is exposed for callers (and tests) that want an
// explicit normalization point distinct from Bytes' full reduction mod p;
// Mul, Square, SquareAndDouble, and FromBytes already carry internally.
func (e *Element) Carry(a *Element) *Element {
	h0, h1, h2, h3, h4 := int64(a[0]), int64(a[1]), int64(a[2]), int64(a[3]), int64(a[4])
	h5, h6, h7, h8, h9 := int64(a[5]), int64(a[6]), int64(a[7]), int64(a[8]), int64(a[9])
	carryMulChain(e, h0, h1, h2, h3, h4, h5, h6, h7, h8, h9)
	return e
}

// Invert sets e = a^(p-2) = a^-1 mod p (Fermat's little theorem) and
// returns e. Behavior is undefined (returns 0) if a == 0. The addition
// chain (254 squarings, 11 multiplications) is the one shared across the
// ref10 lineage.
func (e *Element) Invert(z *Element) *Element {
	var t0, t1, t2, t3 Element

	t0.Square(z)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Mul(z, &t1)
	t0.Mul(&t0, &t1)
	t2.Square(&t0)
	t1.Mul(&t1, &t2)
	t2.Square(&t1)
	for i := 1; i < 5; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t2.Square(&t1)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t1)
	t3.Square(&t2)
	for i := 1; i < 20; i++ {
		t3.Square(&t3)
	}
	t2.Mul(&t3, &t2)
	t2.Square(&t2)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t2.Square(&t1)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t1)
	t3.Square(&t2)
	for i := 1; i < 100; i++ {
		t3.Square(&t3)
	}
	t2.Mul(&t3, &t2)
	t2.Square(&t2)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 1; i < 5; i++ {
		t1.Square(&t1)
	}
	e.Mul(&t1, &t0)
	return e
}

// Pow22523 sets e = a^((p-5)/8) mod p and returns e. This is the exponent
// used to extract square roots during point decompression (p ≡ 5 mod 8).
// The addition chain is 251 squarings and 11 multiplications.
func (e *Element) Pow22523(z *Element) *Element {
	var t0, t1, t2 Element

	t0.Square(z)
	t1.Square(&t0)
	t1.Square(&t1)
	t1.Mul(z, &t1)
	t0.Mul(&t0, &t1)
	t0.Square(&t0)
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 5; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 1; i < 20; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 1; i < 10; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t1.Square(&t0)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t1.Mul(&t1, &t0)
	t2.Square(&t1)
	for i := 1; i < 100; i++ {
		t2.Square(&t2)
	}
	t1.Mul(&t2, &t1)
	t1.Square(&t1)
	for i := 1; i < 50; i++ {
		t1.Square(&t1)
	}
	t0.Mul(&t1, &t0)
	t0.Square(&t0)
	t0.Square(&t0)
	e.Mul(&t0, z)
	return e
}

// P returns the field prime 2^255-19 as a big.Int, for callers (mainly
// package-init constant derivation) that need to reduce a value mod p
// before decoding it as an Element.
func P() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))
	return p
}

// FromBigInt reduces v mod p and decodes the result as an Element. Used at
// package initialization to derive public curve constants from their
// defining integers; not constant-time.
func FromBigInt(v *big.Int) *Element {
	r := new(big.Int).Mod(v, P())
	var buf [32]byte
	b := r.Bytes()
	for i := 0; i < len(b); i++ {
		buf[i] = b[len(b)-1-i]
	}
	return FromBytes(&buf)
}

// PowVartime sets e = a^exp mod p via square-and-multiply over exp's bits,
// most-significant first. It is variable-time in exp and is only ever used
// at package initialization time to derive public curve constants (d,
// sqrt(-1)) from their defining equations, never on secret data.
func (e *Element) PowVartime(a *Element, exp *big.Int) *Element {
	result := new(Element).One()
	base := new(Element).Set(a)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Square(result)
		if exp.Bit(i) == 1 {
			result.Mul(result, base)
		}
	}
	e.Set(result)
	return e
}
