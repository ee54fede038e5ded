package executor

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/txn"
)

// defines prometheus metrics
var (
	promExecuted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_executor_transactions_executed",
		Help: "total number of transactions accepted by kind",
	}, []string{"kind"})

	promRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_executor_transactions_rejected",
		Help: "total number of transactions rejected by kind and error code",
	}, []string{"kind", "error"})
)

// PromCollectors are the collectors a caller should register against its
// own prometheus.Registerer; this package does not register them against
// the default registry itself.
var PromCollectors = []prometheus.Collector{promExecuted, promRejected}

// Metrics observes the outcome of one Execute call. The zero value is
// usable: it records into the package-level collectors above.
type Metrics struct{}

var defaultMetrics = &Metrics{}

func (m *Metrics) observe(kind txn.Kind, result execution.Result) {
	if result.IsSuccess() {
		promExecuted.WithLabelValues(kind.String()).Inc()
		return
	}

	promRejected.WithLabelValues(kind.String(), string(result.Err())).Inc()
}
