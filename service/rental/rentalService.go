package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"movierental/metrics"
	"movierental/model"
	movierepo "movierental/repository/movie"
	rentalrepo "movierental/repository/rental"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvalidInput     ErrCode = "INVALID_INPUT"
	ErrCustomerNotFound ErrCode = "CUSTOMER_NOT_FOUND"
	ErrMovieNotFound    ErrCode = "MOVIE_NOT_FOUND"
	ErrNoStock          ErrCode = "NO_STOCK"
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrAlreadyReturned  ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// WarnRestockFailed accompanies a degraded success: the rental is closed
// but the stock count was not restored.
const WarnRestockFailed = "rental closed but movie stock was not restored"

type RentalRepo interface {
	FindByCustomerAndMovie(ctx context.Context, customerID, movieID string) (*model.Rental, error)
	Insert(ctx context.Context, tx *sql.Tx, r *model.Rental) error
	Close(ctx context.Context, rentalID string, dateReturned time.Time, fee float64) error
	ListAll(ctx context.Context) ([]model.Rental, error)
}

type InventoryRepo interface {
	ByID(ctx context.Context, id string) (*model.Movie, error)
	DecrementStock(ctx context.Context, tx *sql.Tx, movieID string) error
	IncrementStock(ctx context.Context, movieID string) error
}

type CustomerRepo interface {
	ByID(ctx context.Context, id string) (*model.Customer, error)
}

type Service interface {
	// Issue: rent a movie out to a customer, snapshotting both.
	Issue(ctx context.Context, customerID, movieID string) (*model.Rental, error)

	// Return: close the open rental for (customer, movie), compute the fee
	// and restock. Warnings are non-empty on degraded success.
	Return(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error)

	List(ctx context.Context) ([]model.Rental, error)
}

// ----- Service implementation -----

type service struct {
	db  *sql.DB
	r   RentalRepo
	inv InventoryRepo
	cr  CustomerRepo
	log *slog.Logger
	m   *metrics.Metrics

	opTimeout time.Duration
	now       func() time.Time
}

func New(db *sql.DB, r RentalRepo, inv InventoryRepo, cr CustomerRepo, log *slog.Logger, m *metrics.Metrics) Service {
	return &service{
		db:        db,
		r:         r,
		inv:       inv,
		cr:        cr,
		log:       log,
		m:         m,
		opTimeout: 5 * time.Second,
		now:       time.Now,
	}
}

// Issue snapshots the customer and the movie into a new open rental and
// decrements stock, all in one transaction.
func (s *service) Issue(ctx context.Context, customerID, movieID string) (rental *model.Rental, err error) {
	if customerID == "" || movieID == "" {
		return nil, makeErr(ErrInvalidInput)
	}

	cust, err := s.cr.ByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrCustomerNotFound)
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	mov, err := s.inv.ByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrMovieNotFound)
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}

	rental = &model.Rental{
		ID: uuid.NewString(),
		Customer: model.CustomerSnapshot{
			ID:     cust.ID,
			Name:   cust.Name,
			IsGold: cust.IsGold,
			Phone:  cust.Phone,
		},
		Movie: model.MovieSnapshot{
			ID:              mov.ID,
			Title:           mov.Title,
			DailyRentalRate: mov.DailyRentalRate,
		},
		DateOut: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.inv.DecrementStock(ctx, tx, movieID); err != nil {
		if errors.Is(err, movierepo.ErrNoStock) {
			return nil, makeErr(ErrNoStock)
		}
		return nil, fmt.Errorf("decrement stock: %w", err)
	}
	if err = s.r.Insert(ctx, tx, rental); err != nil {
		return nil, fmt.Errorf("insert rental: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return rental, nil
}

// Return is the open -> closed transition. The conditional close is the
// authoritative write: once it lands the rental is returned even if the
// restock afterwards fails.
func (s *service) Return(ctx context.Context, customerID, movieID string) (*model.Rental, []string, error) {
	if customerID == "" || movieID == "" {
		return nil, nil, makeErr(ErrInvalidInput)
	}
	start := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	rental, err := s.r.FindByCustomerAndMovie(opCtx, customerID, movieID)
	cancel()
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, makeErr(ErrNotFound)
		}
		return nil, nil, fmt.Errorf("find rental: %w", err)
	}
	if rental.Closed() {
		s.m.IncReturnConflict()
		return nil, nil, makeErr(ErrAlreadyReturned)
	}

	dateReturned := s.now().UTC()
	fee := float64(rentingDays(rental.DateOut, dateReturned)) * rental.Movie.DailyRentalRate

	opCtx, cancel = context.WithTimeout(ctx, s.opTimeout)
	err = s.r.Close(opCtx, rental.ID, dateReturned, fee)
	cancel()
	if err != nil {
		if errors.Is(err, rentalrepo.ErrAlreadyClosed) {
			// lost the race to a concurrent return; do not touch inventory
			s.m.IncReturnConflict()
			return nil, nil, makeErr(ErrAlreadyReturned)
		}
		return nil, nil, fmt.Errorf("close rental: %w", err)
	}
	rental.DateReturned = &dateReturned
	rental.RentalFee = &fee

	var warnings []string
	if err := s.restock(ctx, rental.Movie.ID); err != nil {
		s.log.Error("restock failed after rental close",
			"rental_id", rental.ID,
			"movie_id", rental.Movie.ID,
			"customer_id", rental.Customer.ID,
			"err", err,
		)
		s.m.IncRestockFailure()
		warnings = append(warnings, WarnRestockFailed)
	}

	s.m.IncReturnProcessed()
	s.m.ObserveReturn(start)
	return rental, warnings, nil
}

// restock retries once on timeout. The close is never re-attempted, so a
// retry here can at worst double-restock after a lost ack, never double
// the fee.
func (s *service) restock(ctx context.Context, movieID string) error {
	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	err := s.inv.IncrementStock(opCtx, movieID)
	cancel()
	if err == nil || !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	opCtx, cancel = context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.inv.IncrementStock(opCtx, movieID)
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	return s.r.ListAll(ctx)
}

// rentingDays is wall-clock arithmetic, not calendar days: partial days
// round up, and overnight does not count as a day unless 24h elapsed.
func rentingDays(dateOut, dateReturned time.Time) int {
	days := int(math.Ceil(dateReturned.Sub(dateOut).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}
