package model

type RoomType string

const (
	RoomTypeFullVilla   RoomType = "Full Villa (3 Bedrooms)"
	RoomTypeOneBedroom  RoomType = "1 Bedroom"
	RoomTypeTwoBedrooms RoomType = "2 Bedrooms"
)

// PriceTable maps a room type to its per-day rate in whole rupees.
type PriceTable map[RoomType]int64

// DefaultPriceTable is the rate card shown on the booking form.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		RoomTypeFullVilla:   5000,
		RoomTypeOneBedroom:  1500,
		RoomTypeTwoBedrooms: 3000,
	}
}

// RoomTypes lists the rooms in the order the form offers them.
func RoomTypes() []RoomType {
	return []RoomType{RoomTypeFullVilla, RoomTypeOneBedroom, RoomTypeTwoBedrooms}
}

// PriceOf falls back to 0 for room types the table does not know.
func (p PriceTable) PriceOf(roomType RoomType) int64 {
	return p[roomType]
}

func (r RoomType) Known() bool {
	_, ok := DefaultPriceTable()[r]

	return ok
}

// Quote is the price of a stay. Valid is false when checkout is not after checkin,
// which is distinct from a valid quote that happens to total 0.
type Quote struct {
	Valid       bool  `json:"valid"`
	Days        int   `json:"days"`
	PricePerDay int64 `json:"pricePerDay"`
	Total       int64 `json:"total"`
}

func InvalidQuote() Quote {
	return Quote{}
}
