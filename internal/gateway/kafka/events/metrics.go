package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_events_published_total",
			Help: "Total number of domain events published to Kafka",
		},
		[]string{"topic", "status"},
	)
)
