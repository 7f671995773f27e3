package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookit-dev/bookit/internal/config"
	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/middleware"
)

func createRequest(t *testing.T, method, url string, body []byte, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// asUser stamps verified claims into the request context, the way the auth
// middleware would after decoding a valid token.
func asUser(req *http.Request, id domain.UserId) *http.Request {
	user := &domain.User{Id: id, Email: "user@x.com"}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserClaimsKey, user))
}

func testConfig() *config.Config {
	return &config.Config{
		Public: config.Public{JwtTTL: 7 * 24 * time.Hour},
	}
}

// --- Service mocks ---

type MockAuthService struct {
	RegisterFunc func(name, email, password string) (domain.User, string, error)
	LoginFunc    func(creds domain.Credentials) (domain.User, string, error)
	ProfileFunc  func(id domain.UserId) (domain.User, error)
}

func (m *MockAuthService) Register(name, email, password string) (domain.User, string, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(name, email, password)
	}
	return domain.User{Id: 1, Name: name, Email: email}, "token", nil
}

func (m *MockAuthService) Login(creds domain.Credentials) (domain.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(creds)
	}
	return domain.User{Id: 1, Email: creds.Email}, "token", nil
}

func (m *MockAuthService) Profile(id domain.UserId) (domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(id)
	}
	return domain.User{Id: id}, nil
}

type MockPlaceService struct {
	CreateFunc        func(owner domain.UserId, draft domain.PlaceDraft) (domain.Place, error)
	AllFunc           func() ([]domain.Place, error)
	GetFunc           func(id domain.PlaceId) (domain.Place, error)
	ByOwnerFunc       func(owner domain.UserId) ([]domain.Place, error)
	DeleteOwnedByFunc func(id domain.PlaceId, caller domain.UserId) error
}

func (m *MockPlaceService) Create(owner domain.UserId, draft domain.PlaceDraft) (domain.Place, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(owner, draft)
	}
	return domain.Place{Id: 1, Owner: owner, Title: draft.Title}, nil
}

func (m *MockPlaceService) All() ([]domain.Place, error) {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return nil, nil
}

func (m *MockPlaceService) Get(id domain.PlaceId) (domain.Place, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return domain.Place{Id: id}, nil
}

func (m *MockPlaceService) ByOwner(owner domain.UserId) ([]domain.Place, error) {
	if m.ByOwnerFunc != nil {
		return m.ByOwnerFunc(owner)
	}
	return nil, nil
}

func (m *MockPlaceService) DeleteOwnedBy(id domain.PlaceId, caller domain.UserId) error {
	if m.DeleteOwnedByFunc != nil {
		return m.DeleteOwnedByFunc(id, caller)
	}
	return nil
}

type MockBookingService struct {
	CreateFunc func(caller domain.UserId, draft domain.BookingDraft) (domain.Booking, error)
	ByUserFunc func(caller domain.UserId) ([]domain.Booking, error)
}

func (m *MockBookingService) Create(caller domain.UserId, draft domain.BookingDraft) (domain.Booking, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(caller, draft)
	}
	return domain.Booking{Id: 1, UserId: caller, PlaceId: draft.PlaceId}, nil
}

func (m *MockBookingService) ByUser(caller domain.UserId) ([]domain.Booking, error) {
	if m.ByUserFunc != nil {
		return m.ByUserFunc(caller)
	}
	return nil, nil
}

type MockUploadService struct {
	StorePhotosFunc func(ctx context.Context, files []*domain.PendingFile) ([]string, error)
}

func (m *MockUploadService) StorePhotos(ctx context.Context, files []*domain.PendingFile) ([]string, error) {
	if m.StorePhotosFunc != nil {
		return m.StorePhotosFunc(ctx, files)
	}
	return []string{}, nil
}
