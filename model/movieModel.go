// model/movie.go
package model

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Movie struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Genre           Genre   `json:"genre"`
	NumberInStock   int     `json:"numberInStock"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}
