// Package config holds the ambient, per-network constants the executor
// consults. There is no file or environment loading here: the executor is
// a library, and callers construct a NetworkConfig as a Go literal, the
// same way consensus parameters get built elsewhere in this codebase.
package config

import "go.semledger.dev/ledger/amount"

// NetworkConfig is the set of ambient constants for a given network.
type NetworkConfig struct {
	// NetworkID distinguishes transactions meant for this network from
	// those of any other (e.g. mainnet vs. a testnet).
	NetworkID byte

	// MinTransactionFee is the minimum fee every transaction kind must pay.
	MinTransactionFee amount.Amount

	// MinDelegateBurnAmount is the exact value a DELEGATE transaction must
	// burn to register.
	MinDelegateBurnAmount amount.Amount
}
