package ctutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"equal", []byte("abc"), []byte("abc"), true},
		{"different contents", []byte("abc"), []byte("abd"), false},
		{"different lengths", []byte("abc"), []byte("ab"), false},
		{"both empty", nil, nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Equal(c.a, c.b))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := ToHex(want)
	require.Equal(t, "deadbeef", encoded)

	decoded, err := FromHex(encoded)
	require.NoError(t, err)
	require.Equal(t, want, decoded)
}

func TestFromHexRejectsInvalidInput(t *testing.T) {
	_, err := FromHex("not hex")
	require.Error(t, err)
}
