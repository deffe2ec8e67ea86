package repositories

import (
	"context"
	"errors"

	"dogtor/internal/common"
	"dogtor/internal/models"

	"github.com/jackc/pgx/v5"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *models.Owner) error
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)
	Update(ctx context.Context, owner *models.Owner) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Owner, error)
}

type ownerRepo struct {
	db Database
}

func NewOwnerRepo(db Database) OwnerRepository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) Create(ctx context.Context, owner *models.Owner) error {
	query := `
		INSERT INTO owners (first_name, last_name, phone, mobile, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, owner.FirstName, owner.LastName, owner.Phone, owner.Mobile, owner.Email).Scan(&owner.ID)
	if err != nil {
		return err
	}
	if owner.Pets == nil {
		owner.Pets = []*models.Pet{}
	}
	return nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	owner := &models.Owner{}
	query := `
		SELECT id, first_name, last_name, phone, mobile, email
		FROM owners
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&owner.ID, &owner.FirstName, &owner.LastName, &owner.Phone, &owner.Mobile, &owner.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	pets, err := r.petsByOwner(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	owner.Pets = pets[id]
	if owner.Pets == nil {
		owner.Pets = []*models.Pet{}
	}
	return owner, nil
}

// GetByEmail matches the email case-insensitively.
func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	owner := &models.Owner{}
	query := `
		SELECT id, first_name, last_name, phone, mobile, email
		FROM owners
		WHERE LOWER(email) = LOWER($1)
	`
	err := r.db.QueryRow(ctx, query, email).Scan(&owner.ID, &owner.FirstName, &owner.LastName, &owner.Phone, &owner.Mobile, &owner.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	owner.Pets = []*models.Pet{}
	return owner, nil
}

func (r *ownerRepo) Update(ctx context.Context, owner *models.Owner) error {
	query := `
		UPDATE owners
		SET first_name = $1, last_name = $2, phone = $3, mobile = $4, email = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, owner.FirstName, owner.LastName, owner.Phone, owner.Mobile, owner.Email, owner.ID)
	return err
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM owners WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *ownerRepo) List(ctx context.Context) ([]*models.Owner, error) {
	query := `
		SELECT id, first_name, last_name, phone, mobile, email
		FROM owners
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []*models.Owner{}
	ids := []int64{}
	for rows.Next() {
		owner := &models.Owner{Pets: []*models.Pet{}}
		if err := rows.Scan(&owner.ID, &owner.FirstName, &owner.LastName, &owner.Phone, &owner.Mobile, &owner.Email); err != nil {
			return nil, err
		}
		owners = append(owners, owner)
		ids = append(ids, owner.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return owners, nil
	}

	pets, err := r.petsByOwner(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, owner := range owners {
		if p, ok := pets[owner.ID]; ok {
			owner.Pets = p
		}
	}
	return owners, nil
}

// petsByOwner loads the pets of the given owners, species name flattened,
// grouped by owner id.
func (r *ownerRepo) petsByOwner(ctx context.Context, ownerIDs []int64) (map[int64][]*models.Pet, error) {
	query := `
		SELECT p.id, p.name, p.owner_id, p.age, p.species_id, s.name
		FROM pets p
		JOIN species s ON s.id = p.species_id
		WHERE p.owner_id = ANY($1)
		ORDER BY p.id
	`
	rows, err := r.db.Query(ctx, query, ownerIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := map[int64][]*models.Pet{}
	for rows.Next() {
		pet := &models.Pet{}
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.OwnerID, &pet.Age, &pet.SpeciesID, &pet.Species); err != nil {
			return nil, err
		}
		pets[pet.OwnerID] = append(pets[pet.OwnerID], pet)
	}
	return pets, rows.Err()
}
