package model

import (
	"time"
)

const (
	EntityName = "booking"

	StatusTentative = "tentative"
)

// Booking is one requested stay. JSON names follow the layout the booking form
// has always written so previously stored state loads unchanged.
type Booking struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Guests      string    `json:"guests"`
	CheckIn     Date      `json:"checkin"`
	CheckOut    Date      `json:"checkout"`
	RoomType    RoomType  `json:"roomtype"`
	Purpose     string    `json:"purpose"`
	Message     string    `json:"message"`
	Status      string    `json:"status,omitempty"`
	BookingDate time.Time `json:"bookingDate"`
}

// Overlaps reports whether [checkIn, checkOut) shares a night with the booking.
func (b Booking) Overlaps(checkIn, checkOut Date) bool {
	return checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn)
}

// Covers reports whether date falls inside [CheckIn, CheckOut).
func (b Booking) Covers(date Date) bool {
	return !date.Before(b.CheckIn) && date.Before(b.CheckOut)
}
