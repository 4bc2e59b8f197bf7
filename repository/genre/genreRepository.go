package genrerepo

import (
	"context"
	"database/sql"

	"movierental/model"

	"github.com/google/uuid"
)

type Repo interface {
	List(ctx context.Context) ([]model.Genre, error)
	ByID(ctx context.Context, id string) (*model.Genre, error)
	Create(ctx context.Context, name string) (*model.Genre, error)
	Update(ctx context.Context, id, name string) (*model.Genre, error)
	Delete(ctx context.Context, id string) (*model.Genre, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) List(ctx context.Context) ([]model.Genre, error) {
	const q = `
		SELECT id, name
		FROM genres
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Genre, error) {
	const q = `
		SELECT id, name
		FROM genres
		WHERE id = $1`
	g := &model.Genre{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) Create(ctx context.Context, name string) (*model.Genre, error) {
	g := &model.Genre{ID: uuid.NewString(), Name: name}
	const q = `
		INSERT INTO genres (id, name)
		VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, q, g.ID, g.Name); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) Update(ctx context.Context, id, name string) (*model.Genre, error) {
	const q = `
		UPDATE genres
		SET name = $2
		WHERE id = $1
		RETURNING id, name`
	g := &model.Genre{}
	if err := r.db.QueryRowContext(ctx, q, id, name).Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return g, nil
}

func (r *repo) Delete(ctx context.Context, id string) (*model.Genre, error) {
	const q = `
		DELETE FROM genres
		WHERE id = $1
		RETURNING id, name`
	g := &model.Genre{}
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&g.ID, &g.Name); err != nil {
		return nil, err
	}
	return g, nil
}
