package dto

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"villa/internal/domains/booking/availability"
	"villa/internal/domains/booking/model"
	"villa/shared/constant"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amountLocale groups amounts the way Indian guests read them.
var amountLocale = language.MustParse("en-IN")

// FormatAmount renders an amount with locale digit grouping, e.g. "₹15,000".
func FormatAmount(currencySymbol string, amount int64) string {
	return currencySymbol + message.NewPrinter(amountLocale).Sprintf("%d", amount)
}

type SubmitBookingRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Guests   string `json:"guests"`
	CheckIn  string `json:"checkin"  validate:"required,isodate"`
	CheckOut string `json:"checkout" validate:"required,isodate"`
	RoomType string `json:"roomtype" validate:"required"`
	Purpose  string `json:"purpose"`
	Message  string `json:"message"`
}

// Normalize trims every field so whitespace-only values count as missing.
func (r *SubmitBookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Guests = strings.TrimSpace(r.Guests)
	r.CheckIn = strings.TrimSpace(r.CheckIn)
	r.CheckOut = strings.TrimSpace(r.CheckOut)
	r.RoomType = strings.TrimSpace(r.RoomType)
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.Message = strings.TrimSpace(r.Message)
}

func (r *SubmitBookingRequest) ToModel(checkIn, checkOut model.Date, bookedAt time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Guests:      r.Guests,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		RoomType:    model.RoomType(r.RoomType),
		Purpose:     r.Purpose,
		Message:     r.Message,
		Status:      model.StatusTentative,
		BookingDate: bookedAt,
	}
}

// StayQuery is the date range and room the form asks about before submitting.
type StayQuery struct {
	CheckIn  string `json:"checkin"  validate:"required,isodate"`
	CheckOut string `json:"checkout" validate:"required,isodate"`
	RoomType string `json:"roomtype" validate:"required"`
}

func (q *StayQuery) FromRequest(r *http.Request) {
	query := r.URL.Query()

	q.CheckIn = strings.TrimSpace(query.Get(constant.RequestParamCheckIn))
	q.CheckOut = strings.TrimSpace(query.Get(constant.RequestParamCheckOut))
	q.RoomType = strings.TrimSpace(query.Get(constant.RequestParamRoomType))
}

// Dates parses both ends. Callers validate the struct first.
func (q *StayQuery) Dates() (model.Date, model.Date, error) {
	checkIn, err := model.ParseDate(q.CheckIn)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}

	checkOut, err := model.ParseDate(q.CheckOut)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}

	return checkIn, checkOut, nil
}

type DateQuery struct {
	Date string `json:"date" validate:"required,isodate"`
}

func (q *DateQuery) FromRequest(r *http.Request) {
	q.Date = strings.TrimSpace(r.URL.Query().Get(constant.RequestParamDate))
}

type CalendarQuery struct {
	Months int `json:"months" validate:"gte=1,lte=12"`
}

// FromRequest falls back to defaultMonths when the parameter is absent.
// A value that is not a number is kept as 0 so validation rejects it.
func (q *CalendarQuery) FromRequest(r *http.Request, defaultMonths int) {
	raw := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamMonths))
	if raw == constant.Empty {
		q.Months = defaultMonths

		return
	}

	months, err := strconv.Atoi(raw)
	if err != nil {
		q.Months = 0

		return
	}

	q.Months = months
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type BookedResponse struct {
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
}

type QuoteResponse struct {
	Valid              bool   `json:"valid"`
	Days               int    `json:"days,omitempty"`
	PricePerDay        int64  `json:"pricePerDay,omitempty"`
	Total              int64  `json:"total,omitempty"`
	PricePerDayDisplay string `json:"pricePerDayDisplay,omitempty"`
	TotalDisplay       string `json:"totalDisplay,omitempty"`
}

func (r *QuoteResponse) FromModel(quote model.Quote, currencySymbol string) {
	r.Valid = quote.Valid
	if !quote.Valid {
		return
	}

	r.Days = quote.Days
	r.PricePerDay = quote.PricePerDay
	r.Total = quote.Total
	r.PricePerDayDisplay = FormatAmount(currencySymbol, quote.PricePerDay)
	r.TotalDisplay = FormatAmount(currencySymbol, quote.Total)
}

type RoomTypeResponse struct {
	Name         string `json:"name"`
	PricePerDay  int64  `json:"pricePerDay"`
	PriceDisplay string `json:"priceDisplay"`
}

func (r *RoomTypeResponse) FromModel(roomType model.RoomType, table model.PriceTable, currencySymbol string) {
	r.Name = string(roomType)
	r.PricePerDay = table.PriceOf(roomType)
	r.PriceDisplay = FormatAmount(currencySymbol, r.PricePerDay)
}

type CalendarResponse struct {
	Today  string               `json:"today"`
	Months []availability.Month `json:"months"`
}

type SubmitResponse struct {
	OK         bool          `json:"ok"`
	ID         string        `json:"id"`
	Summary    string        `json:"summary"`
	HandoffURL string        `json:"handoff_url"`
	Quote      QuoteResponse `json:"quote"`
}

// RequestedEvent is published once a booking has been stored.
type RequestedEvent struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Guests      string         `json:"guests"`
	CheckIn     model.Date     `json:"checkin"`
	CheckOut    model.Date     `json:"checkout"`
	RoomType    model.RoomType `json:"roomtype"`
	Days        int            `json:"days"`
	Total       int64          `json:"total"`
	Status      string         `json:"status"`
	BookingDate time.Time      `json:"bookingDate"`
}

func (e *RequestedEvent) FromModel(booking model.Booking, quote model.Quote) {
	e.ID = booking.ID
	e.Name = booking.Name
	e.Email = booking.Email
	e.Phone = booking.Phone
	e.Guests = booking.Guests
	e.CheckIn = booking.CheckIn
	e.CheckOut = booking.CheckOut
	e.RoomType = booking.RoomType
	e.Days = quote.Days
	e.Total = quote.Total
	e.Status = booking.Status
	e.BookingDate = booking.BookingDate
}
