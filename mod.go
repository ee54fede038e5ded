// Package ledger is the transaction execution core of a delegated
// proof-of-stake ledger: it validates a signed transaction against a pair
// of staged account/delegate state views and applies its deltas.
//
// Sub-packages, leaves first: amount (fixed-point currency), crypto
// (address and signature facade), txn (signed transaction), store/account
// and store/delegate (staged state), execution (result type) and
// execution/executor (the state machine itself).
package ledger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stdout,
	TimeFormat: time.RFC3339,
}

// Logger is a globally available logger instance.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	With().Caller().Logger().
	Level(zerolog.DebugLevel)
