// Package txn implements the immutable signed transaction record the
// executor consumes.
//
// A transaction is uniquely identified by its Hash, computed over the
// canonical big-endian encoding of every field except the signature. Its
// Nonce is the sequence number of the From identity and is used both to
// order transactions and to reject replays.
package txn

import (
	"bytes"
	"encoding/binary"
	"io"

	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/crypto"
	"golang.org/x/xerrors"
)

// Kind is the closed set of transaction kinds this ledger understands.
type Kind byte

const (
	// Transfer moves value from one account to another.
	Transfer Kind = iota

	// Delegate registers the sender as a named delegate.
	Delegate

	// Vote locks value behind a registered delegate.
	Vote

	// Unvote releases previously locked value from a delegate.
	Unvote
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Transfer:
		return "TRANSFER"
	case Delegate:
		return "DELEGATE"
	case Vote:
		return "VOTE"
	case Unvote:
		return "UNVOTE"
	default:
		return "UNKNOWN"
	}
}

// MaxDataLength is the maximum length, in bytes, of the free-form Data
// field (also used as the delegate name payload for DELEGATE
// transactions).
const MaxDataLength = 128

// Transaction is an immutable signed record. Once constructed and signed it
// must not be mutated; the executor only ever reads from it.
type Transaction struct {
	networkID byte
	kind      Kind
	to        crypto.Address
	value     amount.Amount
	fee       amount.Amount
	nonce     uint64
	timestamp int64
	data      []byte

	from crypto.Address
	hash []byte

	pubkey crypto.PublicKey
	sig    crypto.Signature
}

// NewTransaction builds and hashes (but does not sign) a transaction. The
// hash is computed immediately so that Sign has a stable digest to sign
// over.
func NewTransaction(
	networkID byte,
	kind Kind,
	to crypto.Address,
	value, fee amount.Amount,
	nonce uint64,
	timestamp int64,
	data []byte,
	pubkey crypto.PublicKey,
	hf crypto.HashFactory,
) (*Transaction, error) {
	if len(data) > MaxDataLength {
		return nil, xerrors.Errorf("data length %d exceeds maximum %d", len(data), MaxDataLength)
	}

	from, err := crypto.AddressOf(pubkey)
	if err != nil {
		return nil, xerrors.Errorf("couldn't derive sender address: %v", err)
	}

	tx := &Transaction{
		networkID: networkID,
		kind:      kind,
		to:        to,
		value:     value,
		fee:       fee,
		nonce:     nonce,
		timestamp: timestamp,
		data:      append([]byte{}, data...),
		from:      from,
		pubkey:    pubkey,
	}

	h := hf.New()
	if err := tx.Fingerprint(h); err != nil {
		return nil, xerrors.Errorf("couldn't fingerprint tx: %v", err)
	}

	tx.hash = h.Sum(nil)

	return tx, nil
}

// Sign signs the transaction's hash and stores the signature. The signer's
// public key must match the one the transaction was built with.
func (t *Transaction) Sign(signer crypto.Signer) error {
	if len(t.hash) == 0 {
		return xerrors.New("missing digest in transaction")
	}

	if !signer.GetPublicKey().Equal(t.pubkey) {
		return xerrors.New("mismatch signer and identity")
	}

	sig, err := signer.Sign(t.hash)
	if err != nil {
		return xerrors.Errorf("signer: %v", err)
	}

	t.sig = sig

	return nil
}

// WithSignature attaches an externally produced signature, e.g. when
// rebuilding a transaction received over the wire. It does not verify the
// signature; call Validate for that.
func (t *Transaction) WithSignature(sig crypto.Signature) {
	t.sig = sig
}

// GetHash returns the transaction's unique identifier.
func (t *Transaction) GetHash() []byte {
	return t.hash
}

// GetKind returns the transaction kind.
func (t *Transaction) GetKind() Kind {
	return t.kind
}

// GetFrom returns the sender's derived address.
func (t *Transaction) GetFrom() crypto.Address {
	return t.from
}

// GetTo returns the recipient address (or crypto.EmptyAddress for
// DELEGATE).
func (t *Transaction) GetTo() crypto.Address {
	return t.to
}

// GetValue returns the value field.
func (t *Transaction) GetValue() amount.Amount {
	return t.value
}

// GetFee returns the fee field.
func (t *Transaction) GetFee() amount.Amount {
	return t.fee
}

// GetNonce returns the sequence number of the From identity.
func (t *Transaction) GetNonce() uint64 {
	return t.nonce
}

// GetTimestamp returns the milliseconds-since-epoch timestamp.
func (t *Transaction) GetTimestamp() int64 {
	return t.timestamp
}

// GetData returns the free-form data payload (e.g. the delegate name for
// DELEGATE transactions).
func (t *Transaction) GetData() []byte {
	return t.data
}

// GetSignature returns the attached signature, or nil if unsigned.
func (t *Transaction) GetSignature() crypto.Signature {
	return t.sig
}

// GetPublicKey returns the public key of the claimed sender.
func (t *Transaction) GetPublicKey() crypto.PublicKey {
	return t.pubkey
}

// Fingerprint writes the canonical big-endian encoding of every field
// except the signature: network_id | kind | to | value | fee | nonce |
// timestamp | data_len | data.
func (t *Transaction) Fingerprint(w io.Writer) error {
	buf := new(bytes.Buffer)

	buf.WriteByte(t.networkID)
	buf.WriteByte(byte(t.kind))
	buf.Write(t.to[:])

	var u64 [8]byte

	binary.BigEndian.PutUint64(u64[:], t.value.Nano())
	buf.Write(u64[:])

	binary.BigEndian.PutUint64(u64[:], t.fee.Nano())
	buf.Write(u64[:])

	binary.BigEndian.PutUint64(u64[:], t.nonce)
	buf.Write(u64[:])

	binary.BigEndian.PutUint64(u64[:], uint64(t.timestamp))
	buf.Write(u64[:])

	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], uint32(len(t.data)))
	buf.Write(u32[:])
	buf.Write(t.data)

	_, err := w.Write(buf.Bytes())
	if err != nil {
		return xerrors.Errorf("couldn't write transaction payload: %v", err)
	}

	return nil
}

// Validate performs the structural checks shared by every transaction
// kind, per the executor's pre-dispatch guard list: non-zero hash, a data
// payload within bounds, a signature that verifies over the hash with a
// public key whose derived address is From, and a matching network ID.
func (t *Transaction) Validate(networkID byte) error {
	if len(t.hash) == 0 {
		return xerrors.New("transaction has no digest")
	}

	if len(t.data) > MaxDataLength {
		return xerrors.Errorf("data length %d exceeds maximum %d", len(t.data), MaxDataLength)
	}

	if t.networkID != networkID {
		return xerrors.Errorf("network id %d does not match %d", t.networkID, networkID)
	}

	if t.sig == nil {
		return xerrors.New("transaction is not signed")
	}

	from, err := crypto.AddressOf(t.pubkey)
	if err != nil {
		return xerrors.Errorf("couldn't derive sender address: %v", err)
	}

	if from != t.from {
		return xerrors.New("public key does not match the claimed sender")
	}

	if err := t.pubkey.Verify(t.hash, t.sig); err != nil {
		return xerrors.Errorf("invalid signature: %v", err)
	}

	return nil
}
