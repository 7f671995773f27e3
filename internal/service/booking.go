package service

import (
	"net/http"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/errors"
	"github.com/bookit-dev/bookit/internal/metrics"
)

type BookingService interface {
	Create(caller domain.UserId, draft domain.BookingDraft) (domain.Booking, error)
	ByUser(caller domain.UserId) ([]domain.Booking, error)
}

type BookingStorage interface {
	SaveBooking(booking domain.Booking) (domain.BookingId, error)
	BookingsByUser(userId domain.UserId) ([]domain.Booking, error)
}

type Booking struct {
	storage BookingStorage
}

func NewBooking(storage BookingStorage) *Booking {
	return &Booking{storage: storage}
}

// Create records a reservation for the verified caller. The caller identity
// comes exclusively from the session assertion; nothing in the draft can
// override it. Price and guest count are stored as supplied, with no
// cross-check against the referenced listing.
func (b *Booking) Create(caller domain.UserId, draft domain.BookingDraft) (domain.Booking, error) {
	if draft.PlaceId <= 0 {
		return domain.Booking{}, &errors.ErrorWithStatusCode{Message: "Place id is required", StatusCode: http.StatusUnprocessableEntity}
	}

	booking := domain.Booking{
		UserId:   caller,
		PlaceId:  draft.PlaceId,
		Name:     sanitizeText(draft.Name),
		Phone:    sanitizeText(draft.Phone),
		Photos:   draft.Photos,
		CheckIn:  draft.CheckIn,
		CheckOut: draft.CheckOut,
		Guests:   draft.Guests,
		Price:    draft.Price,
	}
	if booking.Photos == nil {
		booking.Photos = []string{}
	}

	id, err := b.storage.SaveBooking(booking)
	if err != nil {
		return domain.Booking{}, err
	}
	booking.Id = id
	metrics.BookingCreated()
	return booking, nil
}

// ByUser returns the caller's own reservations and nothing else.
func (b *Booking) ByUser(caller domain.UserId) ([]domain.Booking, error) {
	return b.storage.BookingsByUser(caller)
}
