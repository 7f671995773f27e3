package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookit-dev/bookit/internal/domain"
	internal_errors "github.com/bookit-dev/bookit/internal/errors"
	"github.com/bookit-dev/bookit/internal/middleware"
	"github.com/bookit-dev/bookit/internal/utils"
)

var badIdError = internal_errors.ErrorWithStatusCode{Message: "Invalid id", StatusCode: http.StatusBadRequest}

type placeBody struct {
	Title       string   `validate:"required" json:"title"`
	Address     string   `json:"address"`
	Photos      []string `json:"photos"`
	Description string   `json:"desc"`
	CheckIn     string   `json:"checkin"`
	CheckOut    string   `json:"checkout"`
	MaxGuests   int      `json:"maxguest"`
	Price       float64  `json:"price"`
}

func (h *Handler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var body placeBody
	if err := loadAndValidateRequestBody(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	place, err := h.place.Create(user.Id, domain.PlaceDraft{
		Title:       body.Title,
		Address:     body.Address,
		Photos:      body.Photos,
		Description: body.Description,
		CheckIn:     body.CheckIn,
		CheckOut:    body.CheckOut,
		MaxGuests:   body.MaxGuests,
		Price:       body.Price,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, place)
}

func (h *Handler) GetAllPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.place.All()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, places)
}

func (h *Handler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	place, err := h.place.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, place)
}

func (h *Handler) GetUserPlaces(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	places, err := h.place.ByOwner(user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, places)
}

func (h *Handler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	// absent and not-owned produce the same 404
	if err := h.place.DeleteOwnedBy(id, user.Id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]string{"message": "Place deleted successfully"})
}

func parseIdParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &badIdError
	}
	return id, nil
}
