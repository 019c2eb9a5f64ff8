// Package summary renders the booking request the guest forwards to the
// property owner over WhatsApp.
package summary

import (
	"fmt"
	"strings"

	"villa/internal/domains/booking/model"
)

const noSpecialRequests = "None"

const layout = `*🏡 %s - BOOKING REQUEST*

*Guest Details:*
👤 Name: %s
📧 Email: %s
📱 Phone: %s
👥 Guests: %s

*Booking Details:*
📅 Check-in: %s
📅 Check-out: %s
🏠 Room Type: %s
🎯 Purpose: %s
📊 Number of Days: %d

*Pricing:*
💰 Rate per day: %s%d
💰 Total Amount: %s%d

*Special Requests:*
%s

*Please confirm this booking and proceed with payment.*
Thank you for choosing %s! 🌿`

// Compose fills the request template. Amounts are plain integers so the owner
// sees exactly what the form quoted.
func Compose(booking model.Booking, quote model.Quote, businessName, currencySymbol string) string {
	message := strings.TrimSpace(booking.Message)
	if message == "" {
		message = noSpecialRequests
	}

	return fmt.Sprintf(layout,
		strings.ToUpper(businessName),
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Guests,
		booking.CheckIn.Display(),
		booking.CheckOut.Display(),
		booking.RoomType,
		booking.Purpose,
		quote.Days,
		currencySymbol, quote.PricePerDay,
		currencySymbol, quote.Total,
		message,
		businessName,
	)
}
