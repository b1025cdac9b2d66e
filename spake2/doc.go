// Package spake2 implements SPAKE2, a password-authenticated key exchange,
// over edwards25519, wire-compatible with BoringSSL's implementation.
//
// Two parties, Alice and Bob, each holding the same low-entropy password,
// run one round trip — each sends a single 32-byte message — and derive a
// shared 64-byte key that an active attacker without the password cannot
// compute or distinguish from random. Two parties with different passwords
// derive unrelated keys; the protocol does not tell them apart beyond that.
//
// A Context is used exactly once:
//
//	ctx, err := spake2.NewContext(spake2.Alice, []byte("alice"), []byte("bob"))
//	msg, err := ctx.GenerateMessage(password)
//	// ... exchange msg with the peer, receive theirMsg ...
//	key, err := ctx.ProcessMessage(theirMsg)
//	ctx.Destroy()
//
// Key confirmation is out of scope: a shared key alone does not prove the
// peer derived the same value. Callers who need that should run an explicit
// confirmation step over the returned key, for which Confirm is a ready
// building block.
package spake2

// Registers crypto.BLAKE2b_512 against the crypto.Hash enum, so callers who
// prefer it over the package default of SHA-512 can pass it to
// NewContextWithHash and have it used for the password hash, transcript
// digest, and Confirm.
import _ "golang.org/x/crypto/blake2b"
