package domain

type PlaceId = int64

// Place is a property listing. Owner is fixed at creation and never updated.
type Place struct {
	Id          PlaceId  `json:"id"`
	Owner       UserId   `json:"owner"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Photos      []string `json:"photos"`
	Description string   `json:"desc"`
	CheckIn     string   `json:"checkin"`
	CheckOut    string   `json:"checkout"`
	MaxGuests   int      `json:"maxguest"`
	Price       float64  `json:"price"`
}

// PlaceDraft carries caller-supplied listing fields. The owner is never part
// of the draft; it comes from the verified session.
type PlaceDraft struct {
	Title       string
	Address     string
	Photos      []string
	Description string
	CheckIn     string
	CheckOut    string
	MaxGuests   int
	Price       float64
}
