package genresvc

import (
	"context"
	"errors"

	"movierental/model"
	genrerepo "movierental/repository/genre"
)

type Service interface {
	List(ctx context.Context) ([]model.Genre, error)
	Detail(ctx context.Context, id string) (*model.Genre, error)
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id, name string) (*model.Genre, error)
	Delete(ctx context.Context, id string) (*model.Genre, error)
}

type service struct{ r genrerepo.Repo }

func New(r genrerepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Genre, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id string) (*model.Genre, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, name string) (*model.Genre, error) {
	if name == "" {
		return nil, errors.New("invalid payload")
	}
	return s.r.Create(ctx, name)
}

func (s *service) Update(ctx context.Context, id, name string) (*model.Genre, error) {
	if name == "" {
		return nil, errors.New("invalid payload")
	}
	return s.r.Update(ctx, id, name)
}

func (s *service) Delete(ctx context.Context, id string) (*model.Genre, error) {
	return s.r.Delete(ctx, id)
}
