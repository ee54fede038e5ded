package txn

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/crypto"
	"go.semledger.dev/ledger/crypto/ed25519"
)

func newSignedTx(t *testing.T, signer ed25519.Signer, kind Kind, to crypto.Address, value, fee amount.Amount, nonce uint64, data []byte) *Transaction {
	tx, err := NewTransaction(1, kind, to, value, fee, nonce, 1000, data, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	require.NoError(t, tx.Sign(signer))

	return tx
}

func TestTransaction_HashIsDeterministic(t *testing.T) {
	signer := ed25519.NewSigner()

	to := crypto.Address{1, 2, 3}

	tx1, err := NewTransaction(1, Transfer, to, amount.NanoSEM(5), amount.NanoSEM(1), 0, 1000, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	tx2, err := NewTransaction(1, Transfer, to, amount.NanoSEM(5), amount.NanoSEM(1), 0, 1000, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	require.Equal(t, tx1.GetHash(), tx2.GetHash())
	require.Len(t, tx1.GetHash(), 32)
}

func TestTransaction_HashChangesWithFields(t *testing.T) {
	signer := ed25519.NewSigner()
	to := crypto.Address{1, 2, 3}

	base, err := NewTransaction(1, Transfer, to, amount.NanoSEM(5), amount.NanoSEM(1), 0, 1000, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	diffNonce, err := NewTransaction(1, Transfer, to, amount.NanoSEM(5), amount.NanoSEM(1), 1, 1000, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	require.NotEqual(t, base.GetHash(), diffNonce.GetHash())
}

func TestTransaction_RejectsOversizedData(t *testing.T) {
	signer := ed25519.NewSigner()

	_, err := NewTransaction(1, Transfer, crypto.Address{}, amount.Zero, amount.Zero, 0, 0,
		make([]byte, MaxDataLength+1), signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.Error(t, err)
}

func TestTransaction_SignAndValidate(t *testing.T) {
	signer := ed25519.NewSigner()

	tx := newSignedTx(t, signer, Transfer, crypto.Address{9}, amount.NanoSEM(5), amount.NanoSEM(1), 0, nil)

	require.NoError(t, tx.Validate(1))
	require.Error(t, tx.Validate(2))
}

func TestTransaction_SignRejectsWrongSigner(t *testing.T) {
	signer := ed25519.NewSigner()
	other := ed25519.NewSigner()

	tx, err := NewTransaction(1, Transfer, crypto.Address{}, amount.Zero, amount.Zero, 0, 0, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	err = tx.Sign(other)
	require.Error(t, err)
}

func TestTransaction_ValidateRejectsUnsigned(t *testing.T) {
	signer := ed25519.NewSigner()

	tx, err := NewTransaction(1, Transfer, crypto.Address{}, amount.Zero, amount.Zero, 0, 0, nil, signer.GetPublicKey(), crypto.NewHashFactory(crypto.Sha256))
	require.NoError(t, err)

	require.Error(t, tx.Validate(1))
}

func TestTransaction_ValidateRejectsTamperedSignature(t *testing.T) {
	signer := ed25519.NewSigner()
	tx := newSignedTx(t, signer, Transfer, crypto.Address{9}, amount.NanoSEM(5), amount.NanoSEM(1), 0, nil)

	tx.WithSignature(ed25519.NewSignature([]byte("bogus")))

	require.Error(t, tx.Validate(1))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "TRANSFER", Transfer.String())
	require.Equal(t, "DELEGATE", Delegate.String())
	require.Equal(t, "VOTE", Vote.String())
	require.Equal(t, "UNVOTE", Unvote.String())
	require.Equal(t, "UNKNOWN", Kind(99).String())
}
