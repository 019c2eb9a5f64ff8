// Package availability holds the pure date-range rules behind the booking form:
// overlap checks, calendar marks and pricing. Nothing here touches storage.
package availability

import (
	"villa/internal/domains/booking/model"
)

// IsAvailable is false iff a booking for the same room type overlaps
// [checkIn, checkOut). Other room types never block.
func IsAvailable(checkIn, checkOut model.Date, roomType model.RoomType, bookings []model.Booking) bool {
	for _, booking := range bookings {
		if booking.RoomType == roomType && booking.Overlaps(checkIn, checkOut) {
			return false
		}
	}

	return true
}

// IsDateBooked is true when any room is taken on date.
func IsDateBooked(date model.Date, bookings []model.Booking) bool {
	for _, booking := range bookings {
		if booking.Covers(date) {
			return true
		}
	}

	return false
}

// PriceFor counts started days between the dates. Unknown room types price at 0.
func PriceFor(checkIn, checkOut model.Date, roomType model.RoomType, table model.PriceTable) model.Quote {
	if !checkOut.After(checkIn) {
		return model.InvalidQuote()
	}

	days := checkIn.DaysUntil(checkOut)
	pricePerDay := table.PriceOf(roomType)

	return model.Quote{
		Valid:       true,
		Days:        days,
		PricePerDay: pricePerDay,
		Total:       int64(days) * pricePerDay,
	}
}
