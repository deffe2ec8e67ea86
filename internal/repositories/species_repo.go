package repositories

import (
	"context"
	"errors"

	"dogtor/internal/common"
	"dogtor/internal/models"

	"github.com/jackc/pgx/v5"
)

type SpeciesRepository interface {
	Create(ctx context.Context, species *models.Species) error
	GetByID(ctx context.Context, id int64) (*models.Species, error)
	GetByName(ctx context.Context, name string) (*models.Species, error)
	Update(ctx context.Context, species *models.Species) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Species, error)
}

type speciesRepo struct {
	db Database
}

func NewSpeciesRepo(db Database) SpeciesRepository {
	return &speciesRepo{db: db}
}

func (r *speciesRepo) Create(ctx context.Context, species *models.Species) error {
	query := `
		INSERT INTO species (name)
		VALUES ($1)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, species.Name).Scan(&species.ID)
}

func (r *speciesRepo) GetByID(ctx context.Context, id int64) (*models.Species, error) {
	species := &models.Species{}
	query := `
		SELECT id, name
		FROM species
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&species.ID, &species.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return species, nil
}

// GetByName matches the name case-insensitively.
func (r *speciesRepo) GetByName(ctx context.Context, name string) (*models.Species, error) {
	species := &models.Species{}
	query := `
		SELECT id, name
		FROM species
		WHERE LOWER(name) = LOWER($1)
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&species.ID, &species.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return species, nil
}

func (r *speciesRepo) Update(ctx context.Context, species *models.Species) error {
	query := `UPDATE species SET name = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, species.Name, species.ID)
	return err
}

func (r *speciesRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM species WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *speciesRepo) List(ctx context.Context) ([]*models.Species, error) {
	query := `
		SELECT id, name
		FROM species
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	species := []*models.Species{}
	for rows.Next() {
		s := &models.Species{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		species = append(species, s)
	}
	return species, rows.Err()
}
