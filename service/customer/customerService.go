package customersvc

import (
	"context"

	"movierental/model"
	customerrepo "movierental/repository/customer"
)

type Service interface {
	List(ctx context.Context) ([]model.Customer, error)
	Detail(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

type service struct{ r customerrepo.Repo }

func New(r customerrepo.Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]model.Customer, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id string) (*model.Customer, error) {
	return s.r.ByID(ctx, id)
}

func (s *service) Create(ctx context.Context, c *model.Customer) error {
	return s.r.Create(ctx, c)
}

func (s *service) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return s.r.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id string) (*model.Customer, error) {
	return s.r.Delete(ctx, id)
}
