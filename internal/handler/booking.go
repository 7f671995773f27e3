package handler

import (
	"net/http"

	"github.com/bookit-dev/bookit/internal/domain"
	"github.com/bookit-dev/bookit/internal/middleware"
	"github.com/bookit-dev/bookit/internal/utils"
)

// Field names mirror the client contract: "id" is the listing id, "tele"
// the contact phone, "guest" the party size. No caller-supplied field can
// name the booking owner.
type bookingBody struct {
	PlaceId  int64    `validate:"required" json:"id"`
	Name     string   `validate:"required" json:"name"`
	Phone    string   `json:"tele"`
	CheckIn  string   `json:"checkin"`
	CheckOut string   `json:"checkout"`
	Guests   int      `json:"guest"`
	Price    float64  `json:"price"`
	Photos   []string `json:"photos"`
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body bookingBody
	if err := loadAndValidateRequestBody(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	booking, err := h.booking.Create(user.Id, domain.BookingDraft{
		PlaceId:  body.PlaceId,
		Name:     body.Name,
		Phone:    body.Phone,
		Photos:   body.Photos,
		CheckIn:  body.CheckIn,
		CheckOut: body.CheckOut,
		Guests:   body.Guests,
		Price:    body.Price,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{"message": "Booking created successfully", "booking": booking})
}

func (h *Handler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}

	bookings, err := h.booking.ByUser(user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, bookings)
}
