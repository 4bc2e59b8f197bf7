package moviesvc

import (
	"context"
	"database/sql"
	"errors"

	"movierental/model"
	genrerepo "movierental/repository/genre"
	movierepo "movierental/repository/movie"
)

var ErrGenreNotFound = errors.New("genre not found")

type Service interface {
	List(ctx context.Context) ([]model.Movie, error)
	Detail(ctx context.Context, id string) (*model.Movie, error)
	Create(ctx context.Context, title, genreID string, numberInStock int, dailyRentalRate float64) (*model.Movie, error)
	Update(ctx context.Context, id, title, genreID string, numberInStock int, dailyRentalRate float64) (*model.Movie, error)
	Delete(ctx context.Context, id string) (*model.Movie, error)
}

type service struct {
	r  movierepo.Repo
	gr genrerepo.Repo
}

func New(r movierepo.Repo, gr genrerepo.Repo) Service { return &service{r: r, gr: gr} }

func (s *service) List(ctx context.Context) ([]model.Movie, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id string) (*model.Movie, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, title, genreID string, numberInStock int, dailyRentalRate float64) (*model.Movie, error) {
	g, err := s.genre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	m := &model.Movie{
		Title:           title,
		Genre:           *g,
		NumberInStock:   numberInStock,
		DailyRentalRate: dailyRentalRate,
	}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id, title, genreID string, numberInStock int, dailyRentalRate float64) (*model.Movie, error) {
	g, err := s.genre(ctx, genreID)
	if err != nil {
		return nil, err
	}
	return s.r.Update(ctx, &model.Movie{
		ID:              id,
		Title:           title,
		Genre:           *g,
		NumberInStock:   numberInStock,
		DailyRentalRate: dailyRentalRate,
	})
}

func (s *service) Delete(ctx context.Context, id string) (*model.Movie, error) {
	return s.r.Delete(ctx, id)
}

func (s *service) genre(ctx context.Context, genreID string) (*model.Genre, error) {
	g, err := s.gr.ByID(ctx, genreID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}
