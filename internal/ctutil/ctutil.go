// Package ctutil holds small byte-level helpers: hex formatting for debug
// output and test fixtures, and constant-time equality for secret-derived
// byte strings. The field, group and spake2 packages do not import it.
package ctutil

import (
	"crypto/subtle"
	"encoding/hex"
)

// Equal reports whether a and b hold the same bytes, in time independent of
// where they first differ. Both slices must be the same length; a length
// mismatch returns false without inspecting contents further than the
// length check itself.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ToHex renders b as a lowercase hex string, for debug output and test
// fixtures only — never used on the wire.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a lowercase hex string, for test fixtures only.
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
