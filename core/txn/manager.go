package txn

import (
	"go.semledger.dev/ledger"
	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/crypto"
	"golang.org/x/xerrors"
)

// Client is the interface the Manager uses to fetch the current nonce of an
// identity, e.g. by querying a committed AccountState. It allows a local
// implementation or, in the future, a network client.
type Client interface {
	GetNonce(addr crypto.Address) (uint64, error)
}

// Manager creates signed transactions on behalf of a single signer,
// tracking the next nonce to use. It manages the nonce itself, except when
// a transaction is rejected by the executor: in that case the caller
// should call Sync to resynchronize before building the next one.
type Manager struct {
	client    Client
	signer    crypto.Signer
	networkID byte
	nonce     uint64
	hashFac   crypto.HashFactory
}

// NewManager creates a new transaction manager for the given signer and
// network.
func NewManager(networkID byte, signer crypto.Signer, client Client) *Manager {
	return &Manager{
		client:    client,
		signer:    signer,
		networkID: networkID,
		hashFac:   crypto.NewHashFactory(crypto.Sha256),
	}
}

// Make builds, hashes and signs a transaction using the manager's current
// nonce, then advances the nonce for the next call.
func (m *Manager) Make(kind Kind, to crypto.Address, value, fee amount.Amount, data []byte) (*Transaction, error) {
	tx, err := NewTransaction(
		m.networkID,
		kind,
		to,
		value,
		fee,
		m.nonce,
		0,
		data,
		m.signer.GetPublicKey(),
		m.hashFac,
	)
	if err != nil {
		return nil, xerrors.Errorf("failed to create tx: %v", err)
	}

	if err := tx.Sign(m.signer); err != nil {
		return nil, xerrors.Errorf("failed to sign: %v", err)
	}

	m.nonce++

	return tx, nil
}

// Sync fetches the latest nonce for the signer's address from the Client,
// discarding the manager's local guess. Call this after a transaction is
// rejected for INVALID_NONCE.
func (m *Manager) Sync() error {
	addr, err := crypto.AddressOf(m.signer.GetPublicKey())
	if err != nil {
		return xerrors.Errorf("couldn't derive address: %v", err)
	}

	nonce, err := m.client.GetNonce(addr)
	if err != nil {
		return xerrors.Errorf("client: %v", err)
	}

	m.nonce = nonce

	ledger.Logger.Debug().Uint64("nonce", nonce).Msg("manager synchronized")

	return nil
}
