package group

import (
	"crypto/sha256"
	"math/big"

	"github.com/tomsons/go-spake2/internal/field"
)

// Curve bundles the edwards25519 parameters and the fixed precomputed
// tables SPAKE2 needs: the curve equation constant d (and 2d), sqrt(-1)
// (needed by point decompression), the base point B with its 32-row
// fixed-base table, the group order ℓ, and the two SPAKE2 mask points M
// and N with their 15-entry small tables (spec.md §4.E, §4.F).
type Curve struct {
	D, D2, SqrtM1 field.Element
	B             P3
	BTable        [32][8]Precomp
	Order         *big.Int

	M, N MaskTable
}

// MaskTable is a mask base point (M or N) together with its 15-entry Duif
// precomputation (spec.md §4.D "small-table fixed-base multiplication").
type MaskTable struct {
	Base  P3
	Table [15]Precomp
}

// baseEncoded is the standard edwards25519 base point's compressed
// encoding (y = 4/5 mod p, x chosen with sign bit 0).
var baseEncoded = [32]byte{
	0x58, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
	0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
}

const (
	maskSeedM = "edwards25519 point generation seed (M)"
	maskSeedN = "edwards25519 point generation seed (N)"
)

// orderL is the prime order of the edwards25519 group:
// ℓ = 2^252 + 27742317777372353535851937790883648493.
var orderL, _ = new(big.Int).SetString(
	"7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

var curveInstance = buildCurve()

// CurveParams returns the package-wide curve instance, built once at
// package initialization from its defining constants and the well-known
// base point and mask-point seeds (spec.md §4.E, §4.F).
func CurveParams() *Curve { return curveInstance }

func buildCurve() *Curve {
	c := &Curve{Order: orderL}

	// d = -121665/121666 mod p
	num := field.Element{-121665}
	den := field.Element{121666}
	var invDen field.Element
	invDen.Invert(&den)
	c.D.Mul(&num, &invDen)
	c.D2.Add(&c.D, &c.D)

	// sqrt(-1) = 2^((p-1)/4) mod p, valid since p ≡ 5 (mod 8): Euler's
	// criterion gives 2^((p-1)/2) ≡ (2/p) = -1 (mod p) for this p, so
	// squaring 2^((p-1)/4) yields -1.
	exp := new(big.Int).Sub(field.P(), big.NewInt(1))
	exp.Rsh(exp, 2)
	two := field.Element{2}
	c.SqrtM1.PowVartime(&two, exp)

	base, ok := FromBytesVartime(c, &baseEncoded)
	if !ok {
		panic("group: standard base point failed to decode")
	}
	c.B = base
	c.BTable = buildFixedBaseTable(c, base)

	c.M = buildMaskTable(c, maskSeedM)
	c.N = buildMaskTable(c, maskSeedN)

	return c
}

// buildFixedBaseTable computes the 32-row, 8-column Duif table for P by
// repeated doubling/addition, rather than from an embedded literal (see
// DESIGN.md). Row p holds the 8 affine multiples (1..8) of 256^p * P —
// the scaling BoringSSL's own ge_scalarmult_base-style ladder actually
// consumes (see ScalarMulFixed in tables.go for how the two table halves
// are combined with a single ×16 correction).
func buildFixedBaseTable(c *Curve, p P3) [32][8]Precomp {
	var table [32][8]Precomp
	cur := p
	for row := 0; row < 32; row++ {
		cached := cur.ToCached(&c.D2)
		acc := cur
		for col := 0; col < 8; col++ {
			if col > 0 {
				r := Add(acc, cached)
				acc = r.ToP3()
			}
			table[row][col] = acc.ToAffinePrecomp(&c.D2)
		}
		if row == 31 {
			break
		}
		// cur := 256 * cur (8 doublings) for the next row.
		for i := 0; i < 8; i++ {
			r := cur.ToP2().Dbl()
			cur = r.ToP3()
		}
	}
	return table
}

// buildMaskTable derives a SPAKE2 mask base point from seed (spec.md
// §4.F: SHA-256(seed) decoded as a curve point — chosen by the BoringSSL
// authors so decoding always succeeds) and builds its 15-entry small
// table (spec.md §4.D).
func buildMaskTable(c *Curve, seed string) MaskTable {
	digest := sha256.Sum256([]byte(seed))
	base, ok := FromBytesVartime(c, &digest)
	if !ok {
		panic("group: mask seed did not decode to a curve point: " + seed)
	}

	// Powers P, 2^64*P, 2^128*P, 2^192*P, via 64 doublings per stage.
	var powers [4]P3
	cur := base
	for stage := 0; stage < 4; stage++ {
		powers[stage] = cur
		if stage == 3 {
			break
		}
		for i := 0; i < 64; i++ {
			p2 := cur.ToP2()
			r := p2.Dbl()
			cur = r.ToP3()
		}
	}

	var table [15]Precomp
	for i := 1; i <= 15; i++ {
		acc := IdentityP3()
		first := true
		for bit := 0; bit < 4; bit++ {
			if i&(1<<uint(bit)) == 0 {
				continue
			}
			if first {
				acc = powers[bit]
				first = false
				continue
			}
			cached := powers[bit].ToCached(&c.D2)
			r := Add(acc, cached)
			acc = r.ToP3()
		}
		table[i-1] = acc.ToAffinePrecomp(&c.D2)
	}

	return MaskTable{Base: base, Table: table}
}
