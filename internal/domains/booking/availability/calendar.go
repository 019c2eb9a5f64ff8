package availability

import (
	"time"

	"villa/internal/domains/booking/model"
	"villa/shared/constant"
)

type Day struct {
	Date   model.Date `json:"date"`
	Day    int        `json:"day"`
	Today  bool       `json:"today"`
	Booked bool       `json:"booked"`
}

// Month is one calendar grid. LeadingBlanks is the weekday of the 1st with
// Sunday as 0, i.e. the empty cells before day 1.
type Month struct {
	Title         string     `json:"title"`
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          []Day      `json:"days"`
}

// Calendar builds one grid per month, starting with the month containing today.
func Calendar(today model.Date, months int, bookings []model.Booking) []Month {
	if months < 1 {
		return []Month{}
	}

	grids := make([]Month, 0, months)
	first := model.NewDate(today.Year(), today.Month(), 1)

	for range months {
		grids = append(grids, monthGrid(first, today, bookings))
		first = model.NewDate(first.Year(), first.Month()+1, 1)
	}

	return grids
}

func monthGrid(first, today model.Date, bookings []model.Booking) Month {
	grid := Month{
		Title:         first.Time().Format(constant.MonthFormat),
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: int(first.Weekday()),
	}

	for date := first; date.Month() == first.Month(); date = date.AddDays(1) {
		grid.Days = append(grid.Days, Day{
			Date:   date,
			Day:    date.Day(),
			Today:  date.Equal(today),
			Booked: IsDateBooked(date, bookings),
		})
	}

	return grid
}
