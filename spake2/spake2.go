package spake2

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	_ "crypto/sha512" // registers crypto.SHA512 for NewContext's default hash
	"encoding/binary"
	"hash"
	"io"

	"github.com/tomsons/go-spake2/internal/group"
)

// Role identifies which side of the exchange a Context plays. The two
// sides use the opposite mask points and hash their names in opposite
// order, so a Context must be told which one it is.
type Role int

const (
	Alice Role = iota
	Bob
)

// State is the position of a Context in its one-way lifecycle:
// Init -> MsgGenerated -> KeyGenerated, with Destroyed reachable from any
// state.
type State int

const (
	Init State = iota
	MsgGenerated
	KeyGenerated
	Destroyed
)

// MaxNameLength bounds myName and theirName. It is generous relative to
// any real identity string; it exists so a caller's length-prefix framing
// upstream of this package cannot be abused to build a pathologically
// large Context.
const MaxNameLength = 1 << 20

// Context runs one side of a single SPAKE2 exchange. A Context is used
// exactly once: construct it, call GenerateMessage, exchange messages out
// of band, call ProcessMessage, then Destroy it.
type Context struct {
	curve *group.Curve

	myRole    Role
	myName    []byte
	theirName []byte

	privateKey     [32]byte
	myMsg          [32]byte
	passwordScalar [32]byte
	passwordHash   []byte

	hashFunc crypto.Hash

	state                     State
	disablePasswordScalarHack bool
}

// NewContext constructs a Context for role, with the given identity
// strings, using the default transcript/confirmation hash (SHA-512). Names
// are copied; the caller's slices may be reused afterward.
func NewContext(role Role, myName, theirName []byte) (*Context, error) {
	return NewContextWithHash(crypto.SHA512, role, myName, theirName)
}

// NewContextWithHash is like NewContext but lets a caller pick the
// transcript/password/confirmation hash, mirroring the teacher's
// NewWithHash(h crypto.Hash, bits int) pattern. h must be a registered,
// available crypto.Hash (crypto.SHA512 and, once
// "golang.org/x/crypto/blake2b" is imported for its registration side
// effect, crypto.BLAKE2b_512, both qualify) with a 64-byte digest; both
// sides of an exchange must pick the same hash.
func NewContextWithHash(h crypto.Hash, role Role, myName, theirName []byte) (*Context, error) {
	if !h.Available() {
		return nil, newError(Unsupported, "requested hash is not available (missing import?)")
	}
	if h.Size() != 64 {
		return nil, newError(Unsupported, "hash must produce a 64-byte digest")
	}
	if len(myName) > MaxNameLength || len(theirName) > MaxNameLength {
		return nil, newError(InvalidArgument, "name exceeds MaxNameLength")
	}
	ctx := &Context{
		curve:     group.CurveParams(),
		myRole:    role,
		myName:    append([]byte(nil), myName...),
		theirName: append([]byte(nil), theirName...),
		hashFunc:  h,
		state:     Init,
	}
	return ctx, nil
}

// SetDisablePasswordScalarHack turns off the cofactor-clearing compatibility
// workaround described on GenerateMessage. It must be called before
// GenerateMessage, and identically on both sides of an exchange, or the two
// parties will compute different messages from the same password.
func (c *Context) SetDisablePasswordScalarHack(disable bool) error {
	if c.state != Init {
		return newError(InvalidState, "must be set before GenerateMessage")
	}
	c.disablePasswordScalarHack = disable
	return nil
}

// GenerateMessage draws a fresh ephemeral key, hashes password into the
// SPAKE2 password scalar, and returns this side's 32-byte protocol message.
// It may be called exactly once per Context, from the Init state.
func (c *Context) GenerateMessage(password []byte) ([]byte, error) {
	if c.state != Init {
		return nil, newError(InvalidState, "GenerateMessage requires Init")
	}

	var seed [64]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, newError(Unsupported, "reading random bytes: "+err.Error())
	}
	privateKey := group.ReduceWide(seed)
	shiftLeft3(&privateKey)
	c.privateKey = privateKey

	p := group.ScalarMulFixed(&c.curve.BTable, c.privateKey)

	ph := c.hashFunc.New()
	ph.Write(password)
	c.passwordHash = ph.Sum(nil)
	c.passwordScalar = group.ReduceWide([64]byte(c.passwordHash))

	if !c.disablePasswordScalarHack {
		c.applyPasswordScalarHack()
	}

	maskTable := &c.curve.M.Table
	if c.myRole == Bob {
		maskTable = &c.curve.N.Table
	}
	mask := group.ScalarMulSmall(maskTable, c.passwordScalar)

	sumP1P1 := group.Add(p, mask.ToCached(&c.curve.D2))
	sum := sumP1P1.ToP3()
	c.myMsg = group.EncodeCompressed(sum)

	c.state = MsgGenerated

	out := make([]byte, 32)
	copy(out, c.myMsg[:])
	return out, nil
}

// applyPasswordScalarHack implements the BoringSSL-compatible
// cofactor-clearing workaround: for each of the low three bits of the
// password scalar, if the bit is currently set, add that power-of-two
// multiple of the group order. The result's low three bits end up zero.
func (c *Context) applyPasswordScalarHack() {
	s := group.Scalar(c.passwordScalar)
	shifts := []uint{0, 1, 2}
	multiples := []uint{1, 2, 4}
	for i, shift := range shifts {
		bit := int32((s[0] >> shift) & 1)
		var next group.Scalar
		group.AddOrderMultiple(&next, &s, multiples[i], bit)
		s = next
	}
	c.passwordScalar = s
}

// ProcessMessage consumes the peer's 32-byte protocol message and returns
// the 64-byte shared key. It requires GenerateMessage to have already run.
func (c *Context) ProcessMessage(theirMsg []byte) ([]byte, error) {
	if c.state != MsgGenerated {
		return nil, newError(InvalidState, "ProcessMessage requires MsgGenerated")
	}
	if len(theirMsg) != 32 {
		return nil, newError(InvalidArgument, "peer message must be 32 bytes")
	}
	var theirMsgArr [32]byte
	copy(theirMsgArr[:], theirMsg)

	decoded, ok := group.FromBytesNegateVartime(c.curve, &theirMsgArr)
	if !ok {
		return nil, newError(InvalidPoint, "peer message does not decode to a curve point")
	}

	peerMaskTable := &c.curve.N.Table
	if c.myRole == Bob {
		peerMaskTable = &c.curve.M.Table
	}
	peerMask := group.ScalarMulSmall(peerMaskTable, c.passwordScalar)

	// FromBytesNegateVartime returns -Y for the point Y the peer actually
	// sent (see point.go's decompress), so combining it with peerMask via
	// group subtraction would leave the two sides with oppositely-signed,
	// non-matching qExt values. Adding here makes qExt = -(Y - peer_mask)
	// on both sides consistently, which is what spec.md §9's
	// "fromBytesNegateVarTime" resolution requires: both sides then reach
	// the same dh point, the negation of privateKey·(Y - peer_mask).
	qExtP1P1 := group.Add(decoded, peerMask.ToCached(&c.curve.D2))
	qExt := qExtP1P1.ToP3()

	dhPoint := group.ScalarMulVarBaseFixedTable(c.curve, qExt, c.privateKey)
	dh := group.EncodeCompressed(dhPoint)

	h := c.hashFunc.New()
	if c.myRole == Alice {
		writeLengthPrefixed(h, c.myName)
		writeLengthPrefixed(h, c.theirName)
		writeLengthPrefixed(h, c.myMsg[:])
		writeLengthPrefixed(h, theirMsgArr[:])
	} else {
		writeLengthPrefixed(h, c.theirName)
		writeLengthPrefixed(h, c.myName)
		writeLengthPrefixed(h, theirMsgArr[:])
		writeLengthPrefixed(h, c.myMsg[:])
	}
	writeLengthPrefixed(h, dh[:])
	writeLengthPrefixed(h, c.passwordHash)

	c.state = KeyGenerated
	return h.Sum(nil), nil
}

// Confirm derives an HMAC confirmation tag over key, using the Context's
// hash (SHA-512 by default, or whatever was passed to
// NewContextWithHash). It is not part of the required state machine: two
// parties who both ended up with the same key will also compute the same
// tag, so exchanging and comparing Confirm(key) out of band (with
// ctutil.Equal, not ==) gives explicit key confirmation when a caller
// needs it.
func (c *Context) Confirm(key []byte) []byte {
	mac := hmac.New(c.hashFunc.New, key)
	mac.Write([]byte("spake2 confirm"))
	return mac.Sum(nil)
}

// Destroy zero-fills every sensitive buffer held by c and marks it
// Destroyed. It is safe to call from any state, including Destroyed
// itself, in which case it is a no-op.
func (c *Context) Destroy() {
	for i := range c.privateKey {
		c.privateKey[i] = 0
	}
	for i := range c.myMsg {
		c.myMsg[i] = 0
	}
	for i := range c.passwordScalar {
		c.passwordScalar[i] = 0
	}
	for i := range c.passwordHash {
		c.passwordHash[i] = 0
	}
	c.state = Destroyed
}

// State reports c's current position in the protocol lifecycle.
func (c *Context) State() State {
	return c.state
}

func shiftLeft3(s *[32]byte) {
	var carry byte
	for i := 0; i < 32; i++ {
		next := s[i] >> 5
		s[i] = (s[i] << 3) | carry
		carry = next
	}
}

func writeLengthPrefixed(h hash.Hash, data []byte) {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(data)))
	h.Write(lenBuf[:])
	h.Write(data)
}
