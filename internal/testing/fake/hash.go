package fake

import "hash"

// HashFactory is a fake implementation of crypto.HashFactory that always
// produces the same digest regardless of what is written to it, useful for
// exercising code paths that depend on a collision without needing to find
// one for real.
//
// - implements crypto.HashFactory
type HashFactory struct {
	Digest []byte
}

// NewHashFactory returns a factory producing digest on every New call.
func NewHashFactory(digest ...byte) HashFactory {
	return HashFactory{Digest: digest}
}

// New implements crypto.HashFactory.
func (f HashFactory) New() hash.Hash {
	return &fixedHash{digest: f.Digest}
}

type fixedHash struct {
	digest []byte
}

func (h *fixedHash) Write(p []byte) (int, error) {
	return len(p), nil
}

func (h *fixedHash) Sum(b []byte) []byte {
	return append(b, h.digest...)
}

func (h *fixedHash) Reset() {}

func (h *fixedHash) Size() int { return len(h.digest) }

func (h *fixedHash) BlockSize() int { return 1 }
