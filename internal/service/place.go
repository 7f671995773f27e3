package service

import (
	"net/http"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/errors"
)

type PlaceService interface {
	Create(owner domain.UserId, draft domain.PlaceDraft) (domain.Place, error)
	All() ([]domain.Place, error)
	Get(id domain.PlaceId) (domain.Place, error)
	ByOwner(owner domain.UserId) ([]domain.Place, error)
	DeleteOwnedBy(id domain.PlaceId, caller domain.UserId) error
}

type PlaceStorage interface {
	SavePlace(place domain.Place) (domain.PlaceId, error)
	Places() ([]domain.Place, error)
	Place(id domain.PlaceId) (domain.Place, error)
	PlacesByOwner(owner domain.UserId) ([]domain.Place, error)
	DeletePlaceOwnedBy(id domain.PlaceId, caller domain.UserId) error
}

type Place struct {
	storage PlaceStorage
}

func NewPlace(storage PlaceStorage) *Place {
	return &Place{storage: storage}
}

// Create persists a listing owned by the verified caller. The owner
// reference is immutable from here on.
func (p *Place) Create(owner domain.UserId, draft domain.PlaceDraft) (domain.Place, error) {
	title := sanitizeText(draft.Title)
	if title == "" {
		return domain.Place{}, &errors.ErrorWithStatusCode{Message: "Title is required", StatusCode: http.StatusUnprocessableEntity}
	}

	place := domain.Place{
		Owner:       owner,
		Title:       title,
		Address:     sanitizeText(draft.Address),
		Photos:      draft.Photos,
		Description: sanitizeText(draft.Description),
		CheckIn:     draft.CheckIn,
		CheckOut:    draft.CheckOut,
		MaxGuests:   draft.MaxGuests,
		Price:       draft.Price,
	}
	if place.Photos == nil {
		place.Photos = []string{}
	}

	id, err := p.storage.SavePlace(place)
	if err != nil {
		return domain.Place{}, err
	}
	place.Id = id
	return place, nil
}

func (p *Place) All() ([]domain.Place, error) {
	return p.storage.Places()
}

func (p *Place) Get(id domain.PlaceId) (domain.Place, error) {
	return p.storage.Place(id)
}

func (p *Place) ByOwner(owner domain.UserId) ([]domain.Place, error) {
	return p.storage.PlacesByOwner(owner)
}

// DeleteOwnedBy removes the listing only for its owner; any other outcome
// reads as "not found".
func (p *Place) DeleteOwnedBy(id domain.PlaceId, caller domain.UserId) error {
	return p.storage.DeletePlaceOwnedBy(id, caller)
}
