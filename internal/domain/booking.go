package domain

type BookingId = int64

// Booking denormalizes listing details at booking time (photos, price), so
// later listing edits or deletions never rewrite reservation history.
type Booking struct {
	Id       BookingId `json:"id"`
	UserId   UserId    `json:"userid"`
	PlaceId  PlaceId   `json:"placeid"`
	Name     string    `json:"name"`
	Phone    string    `json:"tele"`
	Photos   []string  `json:"photos"`
	CheckIn  string    `json:"checkin"`
	CheckOut string    `json:"checkout"`
	Guests   int       `json:"guests_no"`
	Price    float64   `json:"price"`
}

// BookingDraft carries caller-supplied booking fields. The requesting user
// is never part of the draft; it comes from the verified session.
type BookingDraft struct {
	PlaceId  PlaceId
	Name     string
	Phone    string
	Photos   []string
	CheckIn  string
	CheckOut string
	Guests   int
	Price    float64
}
