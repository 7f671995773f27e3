package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/bookit-dev/bookit/internal/domain"
	internal_errors "github.com/bookit-dev/bookit/internal/errors"
)

// =========================================================================
// Public methods (satisfy the service.PlaceStorage interface)
// =========================================================================

func (s *Storage) SavePlace(place domain.Place) (domain.PlaceId, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	var id domain.PlaceId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.savePlace(ctx, tx, place)
		return err
	})
	return id, err
}

func (s *Storage) Places() ([]domain.Place, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.places(ctx, s.db, "")
}

func (s *Storage) PlacesByOwner(owner domain.UserId) ([]domain.Place, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.places(ctx, s.db, "WHERE owner_id = $1", owner)
}

func (s *Storage) Place(id domain.PlaceId) (domain.Place, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.place(ctx, s.db, id)
}

// DeletePlaceOwnedBy removes the place only when it exists and belongs to
// caller. A single conditional DELETE keeps the ownership check and the
// removal atomic; the two cases are indistinguishable to the caller.
func (s *Storage) DeletePlaceOwnedBy(id domain.PlaceId, caller domain.UserId) error {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deletePlaceOwnedBy(ctx, tx, id, caller)
	})
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

const placeColumns = "id, owner_id, title, address, photos, description, checkin, checkout, max_guests, price"

func (s *Storage) savePlace(ctx context.Context, q Querier, place domain.Place) (domain.PlaceId, error) {
	var id int64
	err := q.QueryRowContext(ctx, `
        INSERT INTO places(owner_id, title, address, photos, description, checkin, checkout, max_guests, price)
        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		place.Owner, place.Title, place.Address, pq.Array(place.Photos),
		place.Description, place.CheckIn, place.CheckOut, place.MaxGuests, place.Price,
	).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("failed to insert place: %w", err)
	}
	return id, nil
}

func scanPlace(row interface{ Scan(...interface{}) error }) (domain.Place, error) {
	var place domain.Place
	var photos pq.StringArray
	err := row.Scan(&place.Id, &place.Owner, &place.Title, &place.Address, &photos,
		&place.Description, &place.CheckIn, &place.CheckOut, &place.MaxGuests, &place.Price)
	if err != nil {
		return domain.Place{}, err
	}
	place.Photos = photos
	return place, nil
}

func (s *Storage) places(ctx context.Context, q Querier, where string, args ...interface{}) ([]domain.Place, error) {
	query := fmt.Sprintf("SELECT %s FROM places %s ORDER BY id", placeColumns, where)
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	places := []domain.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}
	return places, nil
}

func (s *Storage) place(ctx context.Context, q Querier, id domain.PlaceId) (domain.Place, error) {
	row := q.QueryRowContext(ctx, fmt.Sprintf("SELECT %s FROM places WHERE id = $1", placeColumns), id)
	place, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Place{}, &internal_errors.ErrorWithStatusCode{Message: "Place not found", StatusCode: http.StatusNotFound}
		}
		return domain.Place{}, fmt.Errorf("failed to query place: %w", err)
	}
	return place, nil
}

func (s *Storage) deletePlaceOwnedBy(ctx context.Context, q Querier, id domain.PlaceId, caller domain.UserId) error {
	result, err := q.ExecContext(ctx, "DELETE FROM places WHERE id = $1 AND owner_id = $2", id, caller)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for place deletion: %w", err)
	}
	if rowsDeleted == 0 {
		// absent and not-owned are deliberately the same answer
		return &internal_errors.ErrorWithStatusCode{Message: "Place not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
