package services

import (
	"context"

	"petadoption/internal/models"
	"petadoption/internal/repositories"
)

// resolvePetOwners attaches the owning user document to each pet that has an
// owner reference. Owners are fetched in a single batched query.
func resolvePetOwners(ctx context.Context, pets []models.Pet, userRepo repositories.UserRepository) ([]models.PetWithOwner, error) {
	ownerIDs := []string{}
	seen := map[string]bool{}
	for _, p := range pets {
		if p.Owner != nil && !seen[*p.Owner] {
			seen[*p.Owner] = true
			ownerIDs = append(ownerIDs, *p.Owner)
		}
	}

	owners, err := userRepo.GetByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(owners))
	for _, u := range owners {
		byID[u.ID] = u
	}

	resolved := make([]models.PetWithOwner, 0, len(pets))
	for _, p := range pets {
		pw := models.PetWithOwner{Pet: p}
		if p.Owner != nil {
			if owner, ok := byID[*p.Owner]; ok {
				pw.OwnerInfo = &owner
			}
		}
		resolved = append(resolved, pw)
	}
	return resolved, nil
}

// resolveUserPets attaches the pet documents referenced by each user's pets
// list, fetched in a single batched query.
func resolveUserPets(ctx context.Context, users []models.User, petRepo repositories.PetRepository) ([]models.UserWithPets, error) {
	petIDs := []string{}
	seen := map[string]bool{}
	for _, u := range users {
		for _, id := range u.Pets {
			if !seen[id] {
				seen[id] = true
				petIDs = append(petIDs, id)
			}
		}
	}

	pets, err := petRepo.GetByIDs(ctx, petIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Pet, len(pets))
	for _, p := range pets {
		byID[p.ID] = p
	}

	resolved := make([]models.UserWithPets, 0, len(users))
	for _, u := range users {
		uw := models.UserWithPets{User: u, PetsInfo: []models.Pet{}}
		for _, id := range u.Pets {
			if p, ok := byID[id]; ok {
				uw.PetsInfo = append(uw.PetsInfo, p)
			}
		}
		resolved = append(resolved, uw)
	}
	return resolved, nil
}
