package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/bookit-dev/bookit/internal/domain"
)

// SaveBooking inserts a reservation. UserId is the verified caller identity,
// never a payload field.
func (s *Storage) SaveBooking(booking domain.Booking) (domain.BookingId, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	var id domain.BookingId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveBooking(ctx, tx, booking)
		return err
	})
	return id, err
}

// BookingsByUser returns only the reservations created by the given user.
func (s *Storage) BookingsByUser(userId domain.UserId) ([]domain.Booking, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.bookingsByUser(ctx, s.db, userId)
}

func (s *Storage) saveBooking(ctx context.Context, q Querier, booking domain.Booking) (domain.BookingId, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
        INSERT INTO bookings(user_id, place_id, name, phone, photos, checkin, checkout, guests, price)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		booking.UserId, booking.PlaceId, booking.Name, booking.Phone, pq.Array(booking.Photos),
		booking.CheckIn, booking.CheckOut, booking.Guests, booking.Price,
	).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert booking: %w", err)
	}
	return id, nil
}

func (s *Storage) bookingsByUser(ctx context.Context, q Querier, userId domain.UserId) ([]domain.Booking, error) {
	rows, err := q.QueryContext(ctx, `
        SELECT id, user_id, place_id, name, phone, photos, checkin, checkout, guests, price
        FROM bookings WHERE user_id = $1 ORDER BY id`, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		var booking domain.Booking
		var photos pq.StringArray
		if err := rows.Scan(&booking.Id, &booking.UserId, &booking.PlaceId, &booking.Name, &booking.Phone,
			&photos, &booking.CheckIn, &booking.CheckOut, &booking.Guests, &booking.Price); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		booking.Photos = photos
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}
