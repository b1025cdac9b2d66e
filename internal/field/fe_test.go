package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "parsing %q", s)
	return v
}

func TestBytesRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"19",
		"123456789012345678901234567890",
	}
	for _, c := range cases {
		v := mustBig(t, c)
		e := FromBigInt(v)
		back := e.Bytes()

		got := new(big.Int).SetBytes(reverse(back[:]))
		require.Equal(t, v.String(), got.String(), "round trip of %s", c)
	}
}

func TestAddMatchesBigInt(t *testing.T) {
	a := FromBigInt(mustBig(t, "12345678901234567890"))
	b := FromBigInt(mustBig(t, "98765432109876543210"))

	var sum Element
	sum.Add(a, b)
	var carried Element
	carried.Carry(&sum)

	want := new(big.Int).Add(
		mustBig(t, "12345678901234567890"),
		mustBig(t, "98765432109876543210"))
	want.Mod(want, P())

	gotBytes := carried.Bytes()
	got := new(big.Int).SetBytes(reverse(gotBytes[:]))
	require.Equal(t, want.String(), got.String())
}

func TestMulMatchesBigInt(t *testing.T) {
	a := FromBigInt(mustBig(t, "987654321098765432109876543210"))
	b := FromBigInt(mustBig(t, "112233445566778899"))

	var prod Element
	prod.Mul(a, b)

	want := new(big.Int).Mul(
		mustBig(t, "987654321098765432109876543210"),
		mustBig(t, "112233445566778899"))
	want.Mod(want, P())

	gotBytes := prod.Bytes()
	got := new(big.Int).SetBytes(reverse(gotBytes[:]))
	require.Equal(t, want.String(), got.String())
}

func TestSquareMatchesMul(t *testing.T) {
	a := FromBigInt(mustBig(t, "5555555555555555555555555555"))

	var viaSquare, viaMul Element
	viaSquare.Square(a)
	viaMul.Mul(a, a)

	require.True(t, viaSquare.Equal(&viaMul))
}

func TestSquareAndDoubleMatchesSquarePlusSquare(t *testing.T) {
	a := FromBigInt(mustBig(t, "424242424242424242424242424242"))

	var sq Element
	sq.Square(a)
	var doubledSq Element
	doubledSq.Add(&sq, &sq)
	var carried Element
	carried.Carry(&doubledSq)

	var sqAndDouble Element
	sqAndDouble.SquareAndDouble(a)

	require.True(t, carried.Equal(&sqAndDouble))
}

func TestInvertIsMultiplicativeInverse(t *testing.T) {
	a := FromBigInt(mustBig(t, "13"))
	var inv, prod Element
	inv.Invert(a)
	prod.Mul(a, &inv)

	var one Element
	one.One()
	require.True(t, prod.Equal(&one))
}

func TestPow22523AgreesWithBigIntExp(t *testing.T) {
	a := FromBigInt(mustBig(t, "99"))

	var got Element
	got.Pow22523(a)

	exp := new(big.Int).Sub(P(), big.NewInt(5))
	exp.Div(exp, big.NewInt(8))
	want := new(big.Int).Exp(mustBig(t, "99"), exp, P())

	wantElem := FromBigInt(want)
	require.True(t, got.Equal(wantElem))
}

func TestCMoveSelectsCorrectOperand(t *testing.T) {
	a := FromBigInt(mustBig(t, "1"))
	b := FromBigInt(mustBig(t, "2"))

	var keepA Element
	keepA.Set(a)
	keepA.CMove(b, 0)
	require.True(t, keepA.Equal(a))

	var takeB Element
	takeB.Set(a)
	takeB.CMove(b, 1)
	require.True(t, takeB.Equal(b))
}

func TestIsNegativeIsLowBitOfEncoding(t *testing.T) {
	for _, v := range []string{"2", "3", "100", "101"} {
		e := FromBigInt(mustBig(t, v))
		b := e.Bytes()
		require.Equal(t, int32(b[0]&1), e.IsNegative())
	}
}

func TestIsNonZero(t *testing.T) {
	var zero Element
	zero.Zero()
	require.False(t, zero.IsNonZero())

	one := FromBigInt(big.NewInt(1))
	require.True(t, one.IsNonZero())
}

func TestNegIsAdditiveInverse(t *testing.T) {
	a := FromBigInt(mustBig(t, "7777777"))
	var neg, sum Element
	neg.Neg(a)
	sum.Add(a, &neg)
	var carried Element
	carried.Carry(&sum)

	var zero Element
	zero.Zero()
	require.True(t, carried.Equal(&zero))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
