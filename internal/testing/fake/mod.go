// Package fake provides fake implementations of the crypto facade for unit
// tests. Each fake offers configuration to return errors when it is needed
// by the test, following the same shape as a real implementation so it can
// be swapped in transparently.
package fake

import (
	"bytes"

	"go.semledger.dev/ledger/crypto"
	"golang.org/x/xerrors"
)

var fakeErr = xerrors.New("fake error")

// Call is a tool to keep track of function calls.
type Call struct {
	calls [][]interface{}
}

// Get returns the nth call's ith parameter.
func (c *Call) Get(n, i int) interface{} {
	return c.calls[n][i]
}

// Len returns the number of calls.
func (c *Call) Len() int {
	return len(c.calls)
}

// Add adds a call to the list.
func (c *Call) Add(args ...interface{}) {
	c.calls = append(c.calls, args)
}

// PublicKey is a fake implementation of crypto.PublicKey.
//
// - implements crypto.PublicKey
type PublicKey struct {
	data      []byte
	ErrVerify error
}

// NewPublicKey returns a public key that verifies any signature.
func NewPublicKey(data ...byte) PublicKey {
	return PublicKey{data: data}
}

// NewBadPublicKey returns a public key whose Verify always fails.
func NewBadPublicKey() PublicKey {
	return PublicKey{ErrVerify: fakeErr}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk PublicKey) MarshalBinary() ([]byte, error) {
	return pk.data, nil
}

// Verify implements crypto.PublicKey.
func (pk PublicKey) Verify(msg []byte, sig crypto.Signature) error {
	return pk.ErrVerify
}

// Equal implements crypto.PublicKey.
func (pk PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(PublicKey)
	return ok && bytes.Equal(pk.data, o.data)
}

// Signature is a fake implementation of crypto.Signature.
//
// - implements crypto.Signature
type Signature struct {
	data []byte
}

// NewSignature returns a fake signature wrapping the given bytes.
func NewSignature(data ...byte) Signature {
	return Signature{data: data}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig Signature) MarshalBinary() ([]byte, error) {
	return sig.data, nil
}

// Signer is a fake implementation of crypto.Signer.
//
// - implements crypto.Signer
type Signer struct {
	pubkey  PublicKey
	ErrSign error
}

// NewSigner returns a signer that signs successfully and whose public key
// always verifies.
func NewSigner() Signer {
	return Signer{pubkey: NewPublicKey(1, 2, 3)}
}

// NewBadSigner returns a signer whose Sign call always fails.
func NewBadSigner() Signer {
	return Signer{pubkey: NewPublicKey(1, 2, 3), ErrSign: fakeErr}
}

// GetPublicKey implements crypto.Signer.
func (s Signer) GetPublicKey() crypto.PublicKey {
	return s.pubkey
}

// Sign implements crypto.Signer.
func (s Signer) Sign(msg []byte) (crypto.Signature, error) {
	if s.ErrSign != nil {
		return nil, s.ErrSign
	}

	return NewSignature(msg...), nil
}
