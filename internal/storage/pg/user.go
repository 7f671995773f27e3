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

// uniqueViolation is the postgres error code raised by the users.email
// unique index. The index, not an application-level pre-check, is what makes
// registration race-free.
const uniqueViolation = "23505"

// =========================================================================
// Public methods (satisfy the service.AuthStorage interface)
// =========================================================================

// SaveUser inserts a new user. A duplicate email surfaces as 422 regardless
// of concurrent timing.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	var id domain.UserId
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.saveUser(ctx, tx, user)
		return err
	})
	return id, err
}

// UserByEmail fetches a user by email, password hash included. Callers must
// not expose the hash.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.userByEmail(ctx, s.db, email)
}

// UserById fetches a user by id for profile retrieval.
func (s *Storage) UserById(id domain.UserId) (domain.User, error) {
	ctx, cancel := queryCtx()
	defer cancel()

	return s.userById(ctx, s.db, id)
}

// =========================================================================
// Internal methods (core database logic, transaction-agnostic)
// =========================================================================

func (s *Storage) saveUser(ctx context.Context, q Querier, user domain.User) (domain.UserId, error) {
	var id int64
	err := q.QueryRowContext(ctx, "INSERT INTO users(name, email, password_hash) VALUES($1, $2, $3) RETURNING id",
		user.Name, user.Email, user.PassHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return -1, &internal_errors.ErrorWithStatusCode{Message: "Email already exists", StatusCode: http.StatusUnprocessableEntity}
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) userByEmail(ctx context.Context, q Querier, email string) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx, "SELECT id, name, email, password_hash FROM users WHERE email = $1", email).
		Scan(&user.Id, &user.Name, &user.Email, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Storage) userById(ctx context.Context, q Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx, "SELECT id, name, email, password_hash FROM users WHERE id = $1", id).
		Scan(&user.Id, &user.Name, &user.Email, &user.PassHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
