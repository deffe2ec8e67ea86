package repositories

import (
	"context"
	"errors"

	"dogtor/internal/common"
	"dogtor/internal/models"

	"github.com/jackc/pgx/v5"
)

type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id int64) (*models.Pet, error)
	FindByNameOwnerSpecies(ctx context.Context, name string, ownerID, speciesID int64) (*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Pet, error)
	CountByOwnerID(ctx context.Context, ownerID int64) (int, error)
}

type petRepo struct {
	db Database
}

func NewPetRepo(db Database) PetRepository {
	return &petRepo{db: db}
}

func (r *petRepo) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (name, owner_id, age, species_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, pet.Name, pet.OwnerID, pet.Age, pet.SpeciesID).Scan(&pet.ID)
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (*models.Pet, error) {
	pet := &models.Pet{}
	query := `
		SELECT p.id, p.name, p.owner_id, p.age, p.species_id, s.name
		FROM pets p
		JOIN species s ON s.id = p.species_id
		WHERE p.id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&pet.ID, &pet.Name, &pet.OwnerID, &pet.Age, &pet.SpeciesID, &pet.Species)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return pet, nil
}

// FindByNameOwnerSpecies looks up the pet matching the uniqueness triple.
// The name comparison is case-insensitive.
func (r *petRepo) FindByNameOwnerSpecies(ctx context.Context, name string, ownerID, speciesID int64) (*models.Pet, error) {
	pet := &models.Pet{}
	query := `
		SELECT p.id, p.name, p.owner_id, p.age, p.species_id, s.name
		FROM pets p
		JOIN species s ON s.id = p.species_id
		WHERE LOWER(p.name) = LOWER($1) AND p.owner_id = $2 AND p.species_id = $3
	`
	err := r.db.QueryRow(ctx, query, name, ownerID, speciesID).Scan(&pet.ID, &pet.Name, &pet.OwnerID, &pet.Age, &pet.SpeciesID, &pet.Species)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return pet, nil
}

func (r *petRepo) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = $1, owner_id = $2, age = $3, species_id = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, pet.Name, pet.OwnerID, pet.Age, pet.SpeciesID, pet.ID)
	return err
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM pets WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *petRepo) List(ctx context.Context) ([]*models.Pet, error) {
	query := `
		SELECT p.id, p.name, p.owner_id, p.age, p.species_id, s.name
		FROM pets p
		JOIN species s ON s.id = p.species_id
		ORDER BY p.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := []*models.Pet{}
	for rows.Next() {
		pet := &models.Pet{}
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.OwnerID, &pet.Age, &pet.SpeciesID, &pet.Species); err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}
	return pets, rows.Err()
}

func (r *petRepo) CountByOwnerID(ctx context.Context, ownerID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM pets WHERE owner_id = $1`
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
