package group

// signedRadix16Digits decomposes a 32-byte little-endian scalar into 64
// signed base-16 digits (spec.md §4.D). Digit k has place value 16^k, and
// Σ digits[k]*16^k equals the original scalar's value as an integer.
// Digits 0..62 lie in [-8, 8); digit 63 lies in [-8, 8] whenever a[31] is
// at most 0x7f, i.e. the scalar is below 2^255.
func signedRadix16Digits(a [32]byte) [64]int8 {
	var e [64]int8
	for i := 0; i < 32; i++ {
		e[2*i+0] = int8(a[i] & 15)
		e[2*i+1] = int8((a[i] >> 4) & 15)
	}
	var carry int8
	for i := 0; i < 63; i++ {
		e[i] += carry
		carry = (e[i] + 8) >> 4
		e[i] -= carry << 4
	}
	e[63] += carry
	return e
}

// selectPrecomp performs a constant-time select of the magnitude-|b| entry
// (1..8) from row, returning the identity if b == 0, and conditionally
// negating the result if b < 0. Every row entry is touched regardless of
// b, and the negation is applied via an unconditional cmov, so the path
// taken does not depend on b's value.
func selectPrecomp(row *[8]Precomp, b int8) Precomp {
	negative := int32(uint8(b) >> 7)
	babs := int32(b) - ((-negative & int32(b)) << 1)

	t := IdentityPrecomp()
	for i := int32(1); i <= 8; i++ {
		eq := int32((uint32(babs^i) - 1) >> 31)
		t.YPlusX.CMove(&row[i-1].YPlusX, eq)
		t.YMinusX.CMove(&row[i-1].YMinusX, eq)
		t.XY2D.CMove(&row[i-1].XY2D, eq)
	}

	var negT Precomp
	negT.YPlusX.Set(&t.YMinusX)
	negT.YMinusX.Set(&t.YPlusX)
	negT.XY2D.Neg(&t.XY2D)
	t.YPlusX.CMove(&negT.YPlusX, negative)
	t.YMinusX.CMove(&negT.YMinusX, negative)
	t.XY2D.CMove(&negT.XY2D, negative)
	return t
}

// ScalarMulFixed multiplies a 32-row x 8-column Duif table (as built by
// buildFixedBaseTable, row p holding affine multiples 1..8 of 256^p*base)
// by a 32-byte little-endian scalar, using the signed-radix-16 ladder
// spec.md §4.D describes: table row p is consumed once for the digit at
// index 2p+1 (accumulated, then corrected by a single ×16 shift — four
// doublings) and once more for the digit at index 2p. This is
// the same two-phase structure used throughout the ref10 lineage for
// fixed-base scalar multiplication, here generalized to any freshly built
// 32-row table (not just the one over the standard base point B), which is
// exactly how spec.md §4.D reuses it for the variable-base dh computation.
func ScalarMulFixed(table *[32][8]Precomp, scalar [32]byte) P3 {
	digits := signedRadix16Digits(scalar)

	h := IdentityP3()
	for i := 1; i < 64; i += 2 {
		t := selectPrecomp(&table[i/2], digits[i])
		r := MAdd(h, t)
		h = r.ToP3()
	}

	r := h.Dbl()
	s := r.ToP2()
	r = s.Dbl()
	s = r.ToP2()
	r = s.Dbl()
	s = r.ToP2()
	r = s.Dbl()
	h = r.ToP3()

	for i := 0; i < 64; i += 2 {
		t := selectPrecomp(&table[i/2], digits[i])
		r := MAdd(h, t)
		h = r.ToP3()
	}
	return h
}

// selectSmall performs a constant-time select across the identity plus all
// 15 entries of a mask small-table, keyed by index in [0, 15] (spec.md
// §4.D "small-table fixed-base multiplication": index 0 means no term,
// just the running doubling).
func selectSmall(table *[15]Precomp, index int) Precomp {
	t := IdentityPrecomp()
	for i := 1; i <= 15; i++ {
		eq := int32((uint32(index^i) - 1) >> 31)
		t.YPlusX.CMove(&table[i-1].YPlusX, eq)
		t.YMinusX.CMove(&table[i-1].YMinusX, eq)
		t.XY2D.CMove(&table[i-1].XY2D, eq)
	}
	return t
}

func bitAt(s *[32]byte, pos int) int {
	return int((s[pos/8] >> uint(pos%8)) & 1)
}

// ScalarMulSmall multiplies a 15-entry mask table (as built by
// buildMaskTable) by a 32-byte little-endian scalar using the bit-sliced
// algorithm of spec.md §4.D: 64 iterations from the top bit down, each
// iteration forming a 4-bit index from bit i of each of the scalar's four
// 64-bit lanes, doubling the accumulator, then adding the selected table
// entry.
func ScalarMulSmall(table *[15]Precomp, scalar [32]byte) P3 {
	h := IdentityP3()
	for i := 63; i >= 0; i-- {
		index := bitAt(&scalar, 0*64+i)
		index |= bitAt(&scalar, 1*64+i) << 1
		index |= bitAt(&scalar, 2*64+i) << 2
		index |= bitAt(&scalar, 3*64+i) << 3

		sel := selectSmall(table, index)

		d := h.Dbl()
		h = d.ToP3()

		r := MAdd(h, sel)
		h = r.ToP3()
	}
	return h
}

// ScalarMulVarBaseFixedTable builds a fresh 32-row Duif table over q and
// runs ScalarMulFixed against it — the "variable-base" multiplication
// spec.md §4.D describes for dh = privateKey·Q_ext, reusing the exact same
// ladder as the fixed base-point case.
func ScalarMulVarBaseFixedTable(c *Curve, q P3, scalar [32]byte) P3 {
	table := buildFixedBaseTable(c, q)
	return ScalarMulFixed(&table, scalar)
}

// DoubleAndAddVartime computes scalar*p via naive double-and-add, most
// significant bit first. It exists purely as an independent reference
// implementation for testing ScalarMulFixed/ScalarMulSmall against
// (spec.md §8 "fixed-base algorithm on P equals naive double-and-add") and
// is not used by the protocol layer.
func DoubleAndAddVartime(c *Curve, p P3, scalar [32]byte) P3 {
	acc := IdentityP3()
	for bitPos := 255; bitPos >= 0; bitPos-- {
		d := acc.Dbl()
		acc = d.ToP3()
		if bitAt(&scalar, bitPos) == 1 {
			cached := p.ToCached(&c.D2)
			r := Add(acc, cached)
			acc = r.ToP3()
		}
	}
	return acc
}
