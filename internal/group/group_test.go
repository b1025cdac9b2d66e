package group

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func scalarFromUint64(v uint64) [32]byte {
	var s [32]byte
	for i := 0; i < 8; i++ {
		s[i] = byte(v >> (8 * i))
	}
	return s
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	c := CurveParams()
	id := IdentityP3()
	cached := c.B.ToCached(&c.D2)

	r := Add(id, cached)
	sum := r.ToP3()

	require.True(t, EncodeCompressed(sum) == EncodeCompressed(c.B))
}

func TestDblMatchesSelfAdd(t *testing.T) {
	c := CurveParams()

	viaAdd := Add(c.B, c.B.ToCached(&c.D2))
	viaDbl := c.B.Dbl()

	require.Equal(t, viaAdd.ToP3().encode(), viaDbl.ToP3().encode())
}

func TestFixedBaseMultiplicationMatchesDoubleAndAdd(t *testing.T) {
	c := CurveParams()

	scalars := []uint64{0, 1, 2, 3, 5, 255, 1 << 20, 0xdeadbeef}
	for _, s := range scalars {
		scalar := scalarFromUint64(s)

		viaTable := ScalarMulFixed(&c.BTable, scalar)
		viaNaive := DoubleAndAddVartime(c, c.B, scalar)

		require.Equal(t, viaNaive.encode(), viaTable.encode(), "scalar %d", s)
	}
}

func TestSmallTableMultiplicationMatchesDoubleAndAdd(t *testing.T) {
	c := CurveParams()

	scalars := []uint64{0, 1, 2, 7, 16, 12345}
	for _, s := range scalars {
		scalar := scalarFromUint64(s)

		viaTable := ScalarMulSmall(&c.M.Table, scalar)
		viaNaive := DoubleAndAddVartime(c, c.M.Base, scalar)

		require.Equal(t, viaNaive.encode(), viaTable.encode(), "scalar %d", s)
	}
}

func TestVariableBaseMultiplicationMatchesDoubleAndAdd(t *testing.T) {
	c := CurveParams()
	scalar := scalarFromUint64(777)

	q := ScalarMulFixed(&c.BTable, scalarFromUint64(9999))
	viaVarBase := ScalarMulVarBaseFixedTable(c, q, scalar)
	viaNaive := DoubleAndAddVartime(c, q, scalar)

	require.Equal(t, viaNaive.encode(), viaVarBase.encode())
}

func TestDecompressRoundTrip(t *testing.T) {
	c := CurveParams()
	for _, s := range []uint64{1, 2, 3, 99} {
		scalar := scalarFromUint64(s)
		p := ScalarMulFixed(&c.BTable, scalar)
		enc := EncodeCompressed(p)

		decoded, ok := FromBytesVartime(c, &enc)
		require.True(t, ok)
		require.Equal(t, enc, EncodeCompressed(decoded))
	}
}

func TestFromBytesNegateVartimeRejectsGarbage(t *testing.T) {
	c := CurveParams()
	var garbage [32]byte
	for i := range garbage {
		garbage[i] = 0xff
	}
	// y = 2^255-2 ≡ 17 (mod p) has no x on the curve. (All-0xff would not
	// do: it reads as y ≡ 18, which is a valid point.)
	garbage[0] = 0xfe
	_, ok := FromBytesNegateVartime(c, &garbage)
	require.False(t, ok)
}

func TestMaskTablesAreDistinctAndNonIdentity(t *testing.T) {
	c := CurveParams()
	require.NotEqual(t, EncodeCompressed(c.M.Base), EncodeCompressed(c.N.Base))

	id := EncodeCompressed(IdentityP3())
	require.NotEqual(t, id, EncodeCompressed(c.M.Base))
	require.NotEqual(t, id, EncodeCompressed(c.N.Base))
}

func TestReduceWideProducesCanonicalScalar(t *testing.T) {
	var wide [64]byte
	for i := range wide {
		wide[i] = 0xff
	}
	reduced := ReduceWide(wide)

	// ℓ has 253 bits; the top two bytes of any canonical scalar below it
	// cannot both be 0xff.
	require.False(t, reduced[31] == 0xff && reduced[30] == 0xff)
}

func TestScalarAddAndDbl(t *testing.T) {
	var a, b, sum, dbl Scalar
	a[0] = 5
	b[0] = 7
	sum.Add(&a, &b)
	require.Equal(t, byte(12), sum[0])

	dbl.Dbl(&a)
	require.Equal(t, byte(10), dbl[0])
}

func scalarFromHex(t *testing.T, s string) Scalar {
	t.Helper()
	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, raw, 32)
	var sc Scalar
	copy(sc[:], raw)
	return sc
}

// TestScalarDblKnownAnswerVectors checks spec.md §8.2's scalar-doubling
// vectors.
func TestScalarDblKnownAnswerVectors(t *testing.T) {
	in := scalarFromHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	want := scalarFromHex(t, "daa7ebb934c624b0ac39ef45bdf3bd2900000000000000000000000000000020")
	var got Scalar
	got.Dbl(&in)
	require.Equal(t, want, got)

	var small, smallGot, smallWant Scalar
	small[0] = 0x08
	smallGot.Dbl(&small)
	smallWant[0] = 0x10
	require.Equal(t, smallWant, smallGot)
}

// TestScalarCMove checks basic select-all/select-none behaviour and
// spec.md §8.3's cmov vectors: cmov(scalar, zero, mask) tiles mask's four
// little-endian bytes across the 32-byte scalar and selects scalar's bits
// wherever the tiled mask is 1.
func TestScalarCMove(t *testing.T) {
	var a, b, dst Scalar
	a[0] = 1
	b[0] = 2

	dst = a
	dst.CMove(&b, 0)
	require.Equal(t, a, dst)

	dst = a
	dst.CMove(&b, 0xFFFFFFFF)
	require.Equal(t, b, dst)

	scalar := scalarFromHex(t, "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")

	var got1 Scalar
	got1.CMove(&scalar, 0x11)
	want1 := scalarFromHex(t, "0100000010000000100000001000000000000000000000000000000000000000")
	require.Equal(t, want1, got1)

	var got2 Scalar
	got2.CMove(&scalar, 0xF9)
	want2 := scalarFromHex(t, "e900000018000000d0000000d800000000000000000000000000000000000000")
	require.Equal(t, want2, got2)

	var got0 Scalar
	got0.CMove(&scalar, 0)
	require.Equal(t, Scalar{}, got0)

	// mask = 1 sets only bit 0 of each tiled word, so only bit 0 of byte 0
	// is taken from scalar.
	var got1flag Scalar
	got1flag.CMove(&scalar, 1)
	var wantFirstByteOnly Scalar
	wantFirstByteOnly[0] = scalar[0] & 0x01
	require.Equal(t, wantFirstByteOnly, got1flag)
}

func TestAddOrderMultipleOnlyAddsWhenConditionSet(t *testing.T) {
	var a, out Scalar
	a[0] = 3

	AddOrderMultiple(&out, &a, 1, 0)
	require.Equal(t, a, out)

	AddOrderMultiple(&out, &a, 1, 1)
	require.NotEqual(t, a, out)
}

// encode is a test-only helper so assertions can compare points by their
// canonical wire form instead of field-by-field.
func (p P3) encode() [32]byte {
	return EncodeCompressed(p)
}
