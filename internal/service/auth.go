package service

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/errors"
	"github.com/bookit-dev/bookit/internal/logger"
	"github.com/bookit-dev/bookit/internal/metrics"
)

type AuthService interface {
	Register(name, email, password string) (domain.User, string, error)
	Login(creds domain.Credentials) (domain.User, string, error)
	Profile(id domain.UserId) (domain.User, error)
}

type AuthStorage interface {
	SaveUser(user domain.User) (domain.UserId, error)
	UserByEmail(email string) (domain.User, error)
	UserById(id domain.UserId) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register creates a new identity and logs it in. Email uniqueness is
// enforced by the storage layer, so a concurrent duplicate registration
// still fails with 422.
func (a *Auth) Register(name, email, password string) (domain.User, string, error) {
	email = strings.ToLower(email)

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, "", err
	}

	user := domain.User{Name: name, Email: email, PassHash: string(passHash)}
	id, err := a.storage.SaveUser(user)
	if err != nil {
		return domain.User{}, "", err
	}
	user.Id = id

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	metrics.UserRegistered()
	return user, token, nil
}

// Login verifies the credentials and returns the user plus a fresh session
// token. Unknown email and wrong password are distinct failures: 404 and
// 422 respectively.
func (a *Auth) Login(creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(creds.Email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", &errors.ErrorWithStatusCode{Message: "Invalid password", StatusCode: http.StatusUnprocessableEntity}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Profile returns the identity for the verified caller. The password hash
// never serializes (json:"-"), so the summary stays hash-free.
func (a *Auth) Profile(id domain.UserId) (domain.User, error) {
	return a.storage.UserById(id)
}
