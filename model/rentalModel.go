// model/rental.go
package model

import "time"

// CustomerSnapshot is the piece of the customer copied into a rental when
// it is issued. It is an owned value, not a reference: later edits to the
// customer record never rewrite rental history.
type CustomerSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsGold bool   `json:"isGold"`
	Phone  string `json:"phone"`
}

// MovieSnapshot locks the title and the daily rate in at issue time. Fees
// are always computed from this rate, never the live movie's.
type MovieSnapshot struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

type Rental struct {
	ID           string           `json:"id"`
	Customer     CustomerSnapshot `json:"customer"`
	Movie        MovieSnapshot    `json:"movie"`
	DateOut      time.Time        `json:"dateOut"`
	DateReturned *time.Time       `json:"dateReturned,omitempty"`
	RentalFee    *float64         `json:"rentalFee,omitempty"`
}

// Closed reports whether the rental has been returned. DateReturned and
// RentalFee are set together, exactly once, and never cleared.
func (r *Rental) Closed() bool { return r.DateReturned != nil }
