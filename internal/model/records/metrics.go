package records

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	transactionKind = "transaction"
	budgetKind      = "budget"

	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

var recordOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "finances",
		Subsystem: "records",
		Name:      "operations_total",
	},
	[]string{"kind", "op"},
)

func observeOperation(kind, op string) {
	recordOperations.WithLabelValues(kind, op).Inc()
}
