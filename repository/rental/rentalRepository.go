// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"movierental/model"
)

// ErrAlreadyClosed is returned by Close when the conditional update finds
// the rental no longer open. It is the serialization point that keeps two
// concurrent returns from both restocking.
var ErrAlreadyClosed = errors.New("rental already closed")

type Repo interface {
	// FindByCustomerAndMovie matches the embedded snapshot ids, not live
	// foreign keys. Open rentals win over closed ones for the same pair.
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*model.Rental, error)

	Insert(ctx context.Context, tx *sql.Tx, r *model.Rental) error

	// Close sets date_returned and rental_fee only if the rental is still
	// open; ErrAlreadyClosed otherwise.
	Close(ctx context.Context, rentalID string, dateReturned time.Time, fee float64) error

	ListAll(ctx context.Context) ([]model.Rental, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const rentalCols = `
	id,
	customer_id, customer_name, customer_is_gold, customer_phone,
	movie_id, movie_title, movie_daily_rental_rate,
	date_out, date_returned, rental_fee`

func scanRental(row interface{ Scan(...any) error }) (*model.Rental, error) {
	r := &model.Rental{}
	err := row.Scan(
		&r.ID,
		&r.Customer.ID, &r.Customer.Name, &r.Customer.IsGold, &r.Customer.Phone,
		&r.Movie.ID, &r.Movie.Title, &r.Movie.DailyRentalRate,
		&r.DateOut, &r.DateReturned, &r.RentalFee,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *repo) FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		WHERE customer_id = $1
		AND movie_id = $2
		ORDER BY (date_returned IS NULL) DESC, date_out DESC
		LIMIT 1`
	return scanRental(r.db.QueryRowContext(ctx, q, customerID, movieID))
}

func (r *repo) Insert(ctx context.Context, tx *sql.Tx, rental *model.Rental) error {
	const q = `
		INSERT INTO rentals (` + rentalCols + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := tx.ExecContext(ctx, q,
		rental.ID,
		rental.Customer.ID, rental.Customer.Name, rental.Customer.IsGold, rental.Customer.Phone,
		rental.Movie.ID, rental.Movie.Title, rental.Movie.DailyRentalRate,
		rental.DateOut, rental.DateReturned, rental.RentalFee,
	)
	return err
}

func (r *repo) Close(ctx context.Context, rentalID string, dateReturned time.Time, fee float64) error {
	const q = `
		UPDATE rentals
		SET date_returned = $2,
			rental_fee = $3
		WHERE id = $1
		AND date_returned IS NULL`
	res, err := r.db.ExecContext(ctx, q, rentalID, dateReturned, fee)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrAlreadyClosed
	}
	return nil
}

func (r *repo) ListAll(ctx context.Context) ([]model.Rental, error) {
	const q = `
		SELECT ` + rentalCols + `
		FROM rentals
		ORDER BY date_out DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rental)
	}
	return out, rows.Err()
}
