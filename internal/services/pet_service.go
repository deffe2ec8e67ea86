package services

import (
	"context"
	"errors"
	"fmt"

	"dogtor/internal/common"
	"dogtor/internal/models"
	"dogtor/internal/repositories"
)

type PetService interface {
	Create(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	GetByID(ctx context.Context, id int64) (*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) (*models.Pet, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Pet, error)
}

type petService struct {
	petRepo repositories.PetRepository
}

func NewPetService(petRepo repositories.PetRepository) PetService {
	return &petService{petRepo: petRepo}
}

// Create inserts a pet after checking the (name, owner, species)
// uniqueness triple. The returned pet carries the flattened species name.
func (s *petService) Create(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	existing, err := s.petRepo.FindByNameOwnerSpecies(ctx, pet.Name, pet.OwnerID, pet.SpeciesID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &common.ConflictError{Detail: fmt.Sprintf("Pet %q already exists", pet.Name)}
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}
	return s.petRepo.GetByID(ctx, pet.ID)
}

func (s *petService) GetByID(ctx context.Context, id int64) (*models.Pet, error) {
	return s.petRepo.GetByID(ctx, id)
}

func (s *petService) Update(ctx context.Context, pet *models.Pet) (*models.Pet, error) {
	if _, err := s.petRepo.GetByID(ctx, pet.ID); err != nil {
		return nil, err
	}
	if err := s.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}
	return s.petRepo.GetByID(ctx, pet.ID)
}

func (s *petService) Delete(ctx context.Context, id int64) error {
	if _, err := s.petRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.petRepo.Delete(ctx, id)
}

func (s *petService) List(ctx context.Context) ([]*models.Pet, error) {
	return s.petRepo.List(ctx)
}
