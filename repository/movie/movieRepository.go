// repository/movie/repo.go
package movierepo

import (
	"context"
	"database/sql"
	"errors"

	"movierental/model"

	"github.com/google/uuid"
)

var (
	// ErrNoStock means a conditional decrement found nothing left to rent.
	ErrNoStock = errors.New("no stock available")
	// ErrStockFull means an increment would exceed the configured cap.
	ErrStockFull = errors.New("stock at cap")
)

type Repo interface {
	List(ctx context.Context) ([]model.Movie, error)
	ByID(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, m *model.Movie) error
	Update(ctx context.Context, m *model.Movie) (*model.Movie, error)
	Delete(ctx context.Context, id string) (*model.Movie, error)

	// DecrementStock runs inside the issue transaction. Guard: stock > 0.
	DecrementStock(ctx context.Context, tx *sql.Tx, movieID string) error
	// IncrementStock is the post-return restock, a single atomic update.
	IncrementStock(ctx context.Context, movieID string) error
}

type repo struct {
	db       *sql.DB
	stockCap int
}

func New(db *sql.DB, stockCap int) Repo { return &repo{db: db, stockCap: stockCap} }

func (r *repo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `
		SELECT m.id, m.title, g.id, g.name, m.number_in_stock, m.daily_rental_rate
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		ORDER BY m.title`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `
		SELECT m.id, m.title, g.id, g.name, m.number_in_stock, m.daily_rental_rate
		FROM movies m
		JOIN genres g ON g.id = m.genre_id
		WHERE m.id = $1`
	m := &model.Movie{}
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.Title, &m.Genre.ID, &m.Genre.Name, &m.NumberInStock, &m.DailyRentalRate)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) Create(ctx context.Context, m *model.Movie) error {
	m.ID = uuid.NewString()
	const q = `
		INSERT INTO movies (id, title, genre_id, number_in_stock, daily_rental_rate)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Title, m.Genre.ID, m.NumberInStock, m.DailyRentalRate)
	return err
}

func (r *repo) Update(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	const q = `
		UPDATE movies
		SET title = $2, genre_id = $3, number_in_stock = $4, daily_rental_rate = $5
		WHERE id = $1
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, q, m.ID, m.Title, m.Genre.ID, m.NumberInStock, m.DailyRentalRate).Scan(&m.ID); err != nil {
		return nil, err
	}
	return r.ByID(ctx, m.ID)
}

func (r *repo) Delete(ctx context.Context, id string) (*model.Movie, error) {
	m, err := r.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = `
		DELETE FROM movies
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *repo) DecrementStock(ctx context.Context, tx *sql.Tx, movieID string) error {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock - 1
		WHERE id = $1
		AND number_in_stock > 0`
	res, err := tx.ExecContext(ctx, q, movieID)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return ErrNoStock
	}
	return nil
}

func (r *repo) IncrementStock(ctx context.Context, movieID string) error {
	const q = `
		UPDATE movies
		SET number_in_stock = number_in_stock + 1
		WHERE id = $1
		AND number_in_stock < $2`
	res, err := r.db.ExecContext(ctx, q, movieID, r.stockCap)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 1 {
		return nil
	}

	// nothing updated: either the movie row is gone or the counter is at
	// the cap; callers log the cause, so tell them apart
	const check = `
		SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, check, movieID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return sql.ErrNoRows
	}
	return ErrStockFull
}
