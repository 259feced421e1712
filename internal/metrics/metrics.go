package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_confirmed_total",
		Help: "Bookings that completed the confirm sequence.",
	})

	BookingConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_conflicts_total",
		Help: "Confirm attempts rejected because the slot was already booked.",
	})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Best-effort notification emails that failed to send.",
	})

	ContactMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_messages_total",
		Help: "Contact form submissions stored.",
	})
)
