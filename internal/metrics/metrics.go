package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelverge_bookings_created_total",
		Help: "Total number of parcel bookings successfully created.",
	})

	StatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parcelverge_status_updates_total",
		Help: "Total number of parcel status writes, by resulting status.",
	},
		[]string{"status"},
	)

	AssignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelverge_assignments_total",
		Help: "Total number of delivery-person assignments.",
	})

	ReviewsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelverge_reviews_added_total",
		Help: "Total number of reviews accepted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "parcelverge_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ProfileCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "parcelverge_profile_cache_items",
		Help: "Current number of delivery-person profiles in the cache.",
	})

	AuditEntriesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parcelverge_audit_entries_dropped_total",
		Help: "Audit entries that could not be enqueued and fell back to the log.",
	})
)
