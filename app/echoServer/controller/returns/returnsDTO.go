package returns

import (
	"time"

	"movierental/model"
)

type ReturnReq struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	MovieID    string `json:"movieId" validate:"required,uuid"`
}

// ReturnResp is the closed rental, exactly these keys. Warnings appears
// only on degraded success.
type ReturnResp struct {
	Customer     model.CustomerSnapshot `json:"customer"`
	Movie        model.MovieSnapshot    `json:"movie"`
	DateOut      time.Time              `json:"dateOut"`
	DateReturned time.Time              `json:"dateReturned"`
	RentalFee    float64                `json:"rentalFee"`
	Warnings     []string               `json:"warnings,omitempty"`
}
