package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry label values.
const (
	RegistryAppointment = "appointment"
	RegistryContact     = "contact"
	RegistryTask        = "task"
)

// Metrics holds the Prometheus collectors shared by the record registries.
type Metrics struct {
	RecordsAdded     *prometheus.CounterVec
	RecordsDeleted   *prometheus.CounterVec
	FieldsUpdated    *prometheus.CounterVec
	OperationsFailed *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_added_total",
			Help:      "Total number of records added to a registry",
		}, []string{"registry"}),
		RecordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Total number of records deleted from a registry",
		}, []string{"registry"}),
		FieldsUpdated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fields_updated_total",
			Help:      "Total number of successful field updates",
		}, []string{"registry", "field"}),
		OperationsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_failed_total",
			Help:      "Total number of rejected registry operations by error code",
		}, []string{"registry", "operation", "code"}),
	}
}

// IncrementAdded records a successful add. Safe on a nil receiver.
func (m *Metrics) IncrementAdded(registry string) {
	if m == nil {
		return
	}
	m.RecordsAdded.WithLabelValues(registry).Inc()
}

func (m *Metrics) IncrementDeleted(registry string) {
	if m == nil {
		return
	}
	m.RecordsDeleted.WithLabelValues(registry).Inc()
}

func (m *Metrics) IncrementUpdated(registry, field string) {
	if m == nil {
		return
	}
	m.FieldsUpdated.WithLabelValues(registry, field).Inc()
}

func (m *Metrics) IncrementFailed(registry, operation, code string) {
	if m == nil {
		return
	}
	m.OperationsFailed.WithLabelValues(registry, operation, code).Inc()
}
