package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for enrollment runs. Counters accumulate
// across runs within one process, which matters for the daily schedule mode.
type Metrics struct {
	ContactsProcessed prometheus.Counter
	MembersAdded      prometheus.Counter
	DMsSent           prometheus.Counter
	FloodSignals      prometheus.Counter
}

// New creates a Metrics instance with all enrollment metrics registered.
func New() *Metrics {
	return &Metrics{
		ContactsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "grouper_contacts_processed_total",
			Help: "Total number of contacts processed across runs",
		}),
		MembersAdded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "grouper_members_added_total",
			Help: "Total number of members successfully added",
		}),
		DMsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "grouper_dms_sent_total",
			Help: "Total number of fallback direct messages delivered",
		}),
		FloodSignals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "grouper_flood_signals_total",
			Help: "Total number of flood or rate-limit responses from the platform",
		}),
	}
}

// IncrementContactsProcessed records one fully processed contact.
func (m *Metrics) IncrementContactsProcessed() {
	m.ContactsProcessed.Inc()
}

// IncrementMembersAdded records a successful add.
func (m *Metrics) IncrementMembersAdded() {
	m.MembersAdded.Inc()
}

// IncrementDMsSent records a delivered fallback DM.
func (m *Metrics) IncrementDMsSent() {
	m.DMsSent.Inc()
}

// IncrementFloodSignals records a flood or rate-limit response.
func (m *Metrics) IncrementFloodSignals() {
	m.FloodSignals.Inc()
}
