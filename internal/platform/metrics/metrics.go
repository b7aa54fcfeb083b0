// Package metrics exposes business counters for the financing core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ifa"

// Metrics groups the counters updated by the services. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	invoiceTransitions *prometheus.CounterVec
	transactions       *prometheus.CounterVec
	postingFailures    *prometheus.CounterVec
	journalEntries     prometheus.Counter
	capacityRejections *prometheus.CounterVec
}

// New creates the counters on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		invoiceTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_transitions_total",
			Help:      "Invoice state machine operations by action and outcome.",
		}, []string{"action", "outcome"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_recorded_total",
			Help:      "Transactions persisted by type.",
		}, []string{"type"}),
		postingFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_posting_failures_total",
			Help:      "Journal entries that failed to post for a recorded transaction.",
		}, []string{"type"}),
		journalEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "journal_entries_posted_total",
			Help:      "Journal entries applied to account balances.",
		}),
		capacityRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facility_capacity_rejections_total",
			Help:      "Facility limit checks that failed on capacity.",
		}, []string{"facility_type"}),
	}
	registry.MustRegister(
		m.invoiceTransitions,
		m.transactions,
		m.postingFailures,
		m.journalEntries,
		m.capacityRejections,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) InvoiceTransition(action, outcome string) {
	if m == nil {
		return
	}
	m.invoiceTransitions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) TransactionRecorded(txnType string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(txnType).Inc()
}

func (m *Metrics) PostingFailed(txnType string) {
	if m == nil {
		return
	}
	m.postingFailures.WithLabelValues(txnType).Inc()
}

func (m *Metrics) JournalEntryPosted() {
	if m == nil {
		return
	}
	m.journalEntries.Inc()
}

func (m *Metrics) CapacityRejected(facilityType string) {
	if m == nil {
		return
	}
	m.capacityRejections.WithLabelValues(facilityType).Inc()
}

// PostingFailures exposes the posting failure counter for a type, mainly for tests.
func (m *Metrics) PostingFailures(txnType string) prometheus.Counter {
	return m.postingFailures.WithLabelValues(txnType)
}

// CapacityRejections exposes the capacity rejection counter for a facility type.
func (m *Metrics) CapacityRejections(facilityType string) prometheus.Counter {
	return m.capacityRejections.WithLabelValues(facilityType)
}
