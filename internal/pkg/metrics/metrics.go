package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConfirmationTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "schoolhealth", Name: "confirmation_transitions_total",
			Help: "Confirmation state machine transitions",
		},
		[]string{"to"},
	)
	EventsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "schoolhealth", Name: "events_created_total",
		Help: "Health events created",
	})
	ConsultationsScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "schoolhealth", Name: "consultations_scheduled_total",
		Help: "Follow-up consultations scheduled",
	})
)

func init() {
	prometheus.MustRegister(ConfirmationTransitions, EventsCreated, ConsultationsScheduled)
}

// Handler exposes the prometheus scrape endpoint
func Handler() http.Handler { return promhttp.Handler() }
