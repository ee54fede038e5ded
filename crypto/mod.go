// Package crypto defines the facade the executor consumes for addresses and
// signatures. The actual elliptic-curve math lives in the ed25519
// sub-package; this package only fixes the shapes (PublicKey, Signature,
// Signer, Address) and the hash factory used for transaction digests and
// address derivation.
package crypto

import (
	"encoding"
	"encoding/hex"
	"hash"

	"golang.org/x/xerrors"
)

// AddressLength is the fixed size, in bytes, of an Address.
const AddressLength = 20

// EmptyAddress is the distinguished all-zero address used as the "to" of a
// DELEGATE registration and, more generally, as a burn sink.
var EmptyAddress = Address{}

// Address is an opaque 20-byte account identifier.
type Address [AddressLength]byte

// AddressOf derives the Address of a public key: the first AddressLength
// bytes of its SHA-256 digest.
func AddressOf(pk PublicKey) (Address, error) {
	data, err := pk.MarshalBinary()
	if err != nil {
		return Address{}, xerrors.Errorf("couldn't marshal public key: %v", err)
	}

	h := NewHashFactory(Sha256).New()
	h.Write(data)
	digest := h.Sum(nil)

	var addr Address
	copy(addr[:], digest[:AddressLength])

	return addr, nil
}

// IsEmpty reports whether this is the distinguished EmptyAddress.
func (a Address) IsEmpty() bool {
	return a == EmptyAddress
}

// String implements fmt.Stringer. It returns the lowercase hex encoding of
// the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	data, err := hex.DecodeString(string(text))
	if err != nil {
		return xerrors.Errorf("couldn't decode address: %v", err)
	}

	if len(data) != AddressLength {
		return xerrors.Errorf("invalid address length %d, want %d", len(data), AddressLength)
	}

	copy(a[:], data)

	return nil
}

// PublicKey is a public identity that can be used to verify a signature and
// to derive an Address.
type PublicKey interface {
	encoding.BinaryMarshaler

	// Verify returns nil if the signature matches the message for this
	// public key.
	Verify(msg []byte, sig Signature) error

	// Equal returns true if the other value is the same public key.
	Equal(other PublicKey) bool
}

// Signature is a verifiable element produced for a unique message.
type Signature interface {
	encoding.BinaryMarshaler
}

// Signer provides the primitives to sign messages and to expose the
// corresponding public key.
type Signer interface {
	GetPublicKey() PublicKey

	Sign(msg []byte) (Signature, error)
}

// HashAlgorithm selects the digest algorithm produced by a HashFactory.
type HashAlgorithm int

const (
	// Sha256 selects the standard library's SHA-256.
	Sha256 HashAlgorithm = iota

	// Sha3_224 selects golang.org/x/crypto's SHA3-224.
	Sha3_224
)

// HashFactory produces a fresh hash.Hash on each call to New, so that
// callers never share digest state across independent computations.
type HashFactory interface {
	New() hash.Hash
}
