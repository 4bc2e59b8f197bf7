package customerrepo

import (
	"context"
	"database/sql"

	"movierental/model"

	"github.com/google/uuid"
)

type Repo interface {
	List(ctx context.Context) ([]model.Customer, error)
	ByID(ctx context.Context, id string) (*model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id string) (*model.Customer, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Customer, error) {
	const q = `
		SELECT id, name, is_gold, phone
		FROM customers
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.IsGold, &c.Phone); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Customer, error) {
	const q = `
		SELECT id, name, is_gold, phone
		FROM customers
		WHERE id = $1`
	c := &model.Customer{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.IsGold, &c.Phone); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Customer) error {
	c.ID = uuid.NewString()
	const q = `
		INSERT INTO customers (id, name, is_gold, phone)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, q, c.ID, c.Name, c.IsGold, c.Phone)
	return err
}

func (r *repo) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	const q = `
		UPDATE customers
		SET name = $2, is_gold = $3, phone = $4
		WHERE id = $1
		RETURNING id, name, is_gold, phone`
	out := &model.Customer{}
	err := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.IsGold, c.Phone).
		Scan(&out.ID, &out.Name, &out.IsGold, &out.Phone)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Delete(ctx context.Context, id string) (*model.Customer, error) {
	const q = `
		DELETE FROM customers
		WHERE id = $1
		RETURNING id, name, is_gold, phone`
	c := &model.Customer{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.IsGold, &c.Phone); err != nil {
		return nil, err
	}
	return c, nil
}
