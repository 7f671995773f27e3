package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	usersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Successful registrations",
		},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Reservations persisted",
		},
	)

	photosUploaded = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photos_uploaded_total",
			Help:      "Photos relocated to object storage",
		},
	)

	photoUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_upload_bytes_total",
			Help:      "Bytes relocated to object storage",
		},
	)
)

func UserRegistered() {
	usersRegistered.Inc()
}

func BookingCreated() {
	bookingsCreated.Inc()
}

func PhotoUploaded(sizeBytes int64) {
	photosUploaded.Inc()
	photoUploadBytes.Add(float64(sizeBytes))
}
