// Package group implements the edwards25519 group used by the SPAKE2
// layer: the five mixed point representations from the ref10 lineage
// (P2, P3, P1P1, Cached, Precomp/Duif), their conversions and additions,
// point decompression, and the two flavors of constant-time scalar
// multiplication SPAKE2 needs (fixed-base with a 32-row Duif table, and a
// small 15-entry table for the mask points M and N).
package group

import "github.com/tomsons/go-spake2/internal/field"

// P2 is the projective representation (X:Y:Z), x = X/Z, y = Y/Z.
type P2 struct {
	X, Y, Z field.Element
}

// P3 is the extended projective representation (X:Y:Z:T), with the
// invariant X*Y = Z*T. Used for the "working" point through most of the
// group layer, including as the decoded form of a peer's wire message.
type P3 struct {
	X, Y, Z, T field.Element
}

// P1P1 is the completed representation ((X:Z),(Y:T)): x = X/Z, y = Y/T.
// It is the output type of every addition/doubling primitive and is
// immediately converted to P2 or P3.
type P1P1 struct {
	X, Y, Z, T field.Element
}

// Cached holds (Y+X, Y-X, Z, 2d*T), precomputed from a P3 point so it can
// be added into another P3 without recomputing those products each time.
type Cached struct {
	YplusX, YminusX, Z, T2d field.Element
}

// Precomp holds the affine Duif-form precomputation (y+x, y-x, 2d*x*y) for
// a point with Z implicitly 1. Used for mixed addition against fixed
// (table-precomputed) points.
type Precomp struct {
	YPlusX, YMinusX, XY2D field.Element
}

// IdentityP2 returns the neutral element in P2 form: (0:1:1).
func IdentityP2() P2 {
	var p P2
	p.X.Zero()
	p.Y.One()
	p.Z.One()
	return p
}

// IdentityP3 returns the neutral element in P3 form: (0:1:1:0).
func IdentityP3() P3 {
	var p P3
	p.X.Zero()
	p.Y.One()
	p.Z.One()
	p.T.Zero()
	return p
}

// IdentityPrecomp returns the neutral element in Duif form: (1,1,0).
func IdentityPrecomp() Precomp {
	var p Precomp
	p.YPlusX.One()
	p.YMinusX.One()
	p.XY2D.Zero()
	return p
}

// ToP2 drops a P3 point's T coordinate.
func (p P3) ToP2() P2 {
	var r P2
	r.X.Set(&p.X)
	r.Y.Set(&p.Y)
	r.Z.Set(&p.Z)
	return r
}

// ToP2 normalizes a completed point into projective form.
func (p P1P1) ToP2() P2 {
	var r P2
	r.X.Mul(&p.X, &p.T)
	r.Y.Mul(&p.Y, &p.Z)
	r.Z.Mul(&p.Z, &p.T)
	return r
}

// ToP3 normalizes a completed point into extended projective form.
func (p P1P1) ToP3() P3 {
	var r P3
	r.X.Mul(&p.X, &p.T)
	r.Y.Mul(&p.Y, &p.Z)
	r.Z.Mul(&p.Z, &p.T)
	r.T.Mul(&p.X, &p.Y)
	return r
}

// ToCached precomputes p for use as the addend in Add/Sub, given the
// curve's 2d constant.
func (p P3) ToCached(twoD *field.Element) Cached {
	var c Cached
	c.YplusX.Add(&p.Y, &p.X)
	c.YminusX.Sub(&p.Y, &p.X)
	c.Z.Set(&p.Z)
	c.T2d.Mul(&p.T, twoD)
	return c
}

// ToAffinePrecomp normalizes p (dividing out Z) into Duif form, given the
// curve's 2d constant. It costs a field inversion and is only ever called
// on public points while building precomputed tables.
func (p P3) ToAffinePrecomp(twoD *field.Element) Precomp {
	var zInv, x, y field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)

	var r Precomp
	r.YPlusX.Add(&y, &x)
	r.YMinusX.Sub(&y, &x)
	r.XY2D.Mul(&x, &y)
	r.XY2D.Mul(&r.XY2D, twoD)
	return r
}

// Dbl doubles a P2 point, producing a completed point.
func (p P2) Dbl() P1P1 {
	var r P1P1
	var t0 field.Element

	r.X.Square(&p.X)
	r.Z.Square(&p.Y)
	r.T.SquareAndDouble(&p.Z)
	r.Y.Add(&p.X, &p.Y)
	t0.Square(&r.Y)
	r.Y.Add(&r.Z, &r.X)
	r.Z.Sub(&r.Z, &r.X)
	r.X.Sub(&t0, &r.Y)
	r.T.Sub(&r.T, &r.Z)
	return r
}

// Dbl doubles a P3 point, producing a completed point.
func (p P3) Dbl() P1P1 {
	return p.ToP2().Dbl()
}

// Add sets r = p + q (p in P3, q cached) and returns the completed point.
func Add(p P3, q Cached) P1P1 {
	var r P1P1
	var t0 field.Element

	r.X.Add(&p.Y, &p.X)
	r.Y.Sub(&p.Y, &p.X)
	r.Z.Mul(&r.X, &q.YplusX)
	r.Y.Mul(&r.Y, &q.YminusX)
	r.T.Mul(&q.T2d, &p.T)
	r.X.Mul(&p.Z, &q.Z)
	t0.Add(&r.X, &r.X)
	r.X.Sub(&r.Z, &r.Y)
	r.Y.Add(&r.Z, &r.Y)
	r.Z.Add(&t0, &r.T)
	r.T.Sub(&t0, &r.T)
	return r
}

// Sub sets r = p - q (p in P3, q cached) and returns the completed point.
func Sub(p P3, q Cached) P1P1 {
	var r P1P1
	var t0 field.Element

	r.X.Add(&p.Y, &p.X)
	r.Y.Sub(&p.Y, &p.X)
	r.Z.Mul(&r.X, &q.YminusX)
	r.Y.Mul(&r.Y, &q.YplusX)
	r.T.Mul(&q.T2d, &p.T)
	r.X.Mul(&p.Z, &q.Z)
	t0.Add(&r.X, &r.X)
	r.X.Sub(&r.Z, &r.Y)
	r.Y.Add(&r.Z, &r.Y)
	r.Z.Sub(&t0, &r.T)
	r.T.Add(&t0, &r.T)
	return r
}

// MAdd sets r = p + q (p in P3, q an affine Duif point) and returns the
// completed point. Cheaper than Add because q's Z is implicitly 1.
func MAdd(p P3, q Precomp) P1P1 {
	var r P1P1
	var t0 field.Element

	r.X.Add(&p.Y, &p.X)
	r.Y.Sub(&p.Y, &p.X)
	r.Z.Mul(&r.X, &q.YPlusX)
	r.Y.Mul(&r.Y, &q.YMinusX)
	r.T.Mul(&q.XY2D, &p.T)
	t0.Add(&p.Z, &p.Z)
	r.X.Sub(&r.Z, &r.Y)
	r.Y.Add(&r.Z, &r.Y)
	r.Z.Add(&t0, &r.T)
	r.T.Sub(&t0, &r.T)
	return r
}

// MSub sets r = p - q (p in P3, q an affine Duif point) and returns the
// completed point.
func MSub(p P3, q Precomp) P1P1 {
	var r P1P1
	var t0 field.Element

	r.X.Add(&p.Y, &p.X)
	r.Y.Sub(&p.Y, &p.X)
	r.Z.Mul(&r.X, &q.YMinusX)
	r.Y.Mul(&r.Y, &q.YPlusX)
	r.T.Mul(&q.XY2D, &p.T)
	t0.Add(&p.Z, &p.Z)
	r.X.Sub(&r.Z, &r.Y)
	r.Y.Add(&r.Z, &r.Y)
	r.Z.Sub(&t0, &r.T)
	r.T.Add(&t0, &r.T)
	return r
}

// FromBytesNegateVartime decompresses a 32-byte compressed point per
// spec.md §4.D. The returned point, if ok, is affine-as-P3 (Z fixed to 1,
// T = X*Y) with X carrying the OPPOSITE sign from the one encoded in s —
// matching the ref10 "negate" convention this routine is named for. It is
// variable-time: the input is peer-controlled, never secret, and failure
// is security-neutral (spec.md §4.D, §5).
func FromBytesNegateVartime(curve *Curve, s *[32]byte) (P3, bool) {
	p, sign, ok := decompress(curve, s)
	if !ok {
		return P3{}, false
	}
	if p.X.IsNegative() == int32(sign) {
		p.X.Neg(&p.X)
	}
	p.T.Mul(&p.X, &p.Y)
	return p, true
}

// FromBytesVartime decompresses s like FromBytesNegateVartime but without
// the sign flip, yielding the point actually encoded by s. Used internally
// to decode well-known public constants (the base point, the M/N mask
// seeds) where the "negate" convention of the wire-decoding routine above
// would be wrong.
func FromBytesVartime(curve *Curve, s *[32]byte) (P3, bool) {
	p, sign, ok := decompress(curve, s)
	if !ok {
		return P3{}, false
	}
	if p.X.IsNegative() != int32(sign) {
		p.X.Neg(&p.X)
	}
	p.T.Mul(&p.X, &p.Y)
	return p, true
}

// decompress implements the shared arithmetic of point decompression
// (spec.md §4.D): parse y, recover a candidate x via
// x = u*v^3*(u*v^7)^((p-5)/8),
// verify v*x^2 == ±u, and return the unsigned result plus the sign bit
// encoded in s. Callers decide how to apply the sign.
func decompress(curve *Curve, s *[32]byte) (p P3, sign byte, ok bool) {
	var enc [32]byte
	copy(enc[:], s[:])
	sign = enc[31] >> 7
	enc[31] &^= 0x80

	p.Y = *field.FromBytes(&enc)
	p.Z.One()

	var u, v, v3, vxx, check field.Element
	u.Square(&p.Y)
	v.Mul(&u, &curve.D)
	u.Sub(&u, &p.Z) // u = y^2 - 1
	v.Add(&v, &p.Z) // v = d*y^2 + 1

	v3.Square(&v)
	v3.Mul(&v3, &v) // v3 = v^3
	p.X.Square(&v3)
	p.X.Mul(&p.X, &v)
	p.X.Mul(&p.X, &u) // x = u*v^7

	p.X.Pow22523(&p.X)
	p.X.Mul(&p.X, &v3)
	p.X.Mul(&p.X, &u) // x = u*v^3*(u*v^7)^((p-5)/8)

	vxx.Square(&p.X)
	vxx.Mul(&vxx, &v)
	check.Sub(&vxx, &u)
	if check.IsNonZero() {
		check.Add(&vxx, &u)
		if check.IsNonZero() {
			return P3{}, 0, false
		}
		p.X.Mul(&p.X, &curve.SqrtM1)
	}
	return p, sign, true
}

// EncodeCompressed encodes p (a normalized, Z=1 affine-as-P3 point, or any
// P3 — Z is divided out) into the 32-byte compressed wire form: the
// little-endian encoding of y with the sign of x folded into the top bit
// of byte 31.
func EncodeCompressed(p P3) [32]byte {
	var zInv, x, y field.Element
	zInv.Invert(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)

	out := y.Bytes()
	out[31] ^= byte(x.IsNegative()) << 7
	return out
}
