package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"petadoption/internal/services"
	"petadoption/pkg/pagination"
)

// petSortFields are the fields clients may sort the pet listing by.
var petSortFields = []string{"createdAt", "updatedAt", "name", "species", "age"}

// PetHandler handles HTTP requests for pets.
type PetHandler struct {
	service *services.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *services.PetService) *PetHandler {
	return &PetHandler{
		service: service,
	}
}

// RegisterRoutes registers the pet routes with the Fiber app.
func (h *PetHandler) RegisterRoutes(router fiber.Router) {
	petRoutes := router.Group("/pets")
	petRoutes.Get("/", h.HandleGetPets)
	petRoutes.Get("/count/total", h.HandleCountPets)
	petRoutes.Get("/species/:species", h.HandleGetPetsBySpecies)
	petRoutes.Get("/:id", h.HandleGetPetByID)
}

// HandleGetPets returns a paginated pet list with owners resolved.
func (h *PetHandler) HandleGetPets(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("limit"), c.Query("page"), c.Query("sort"), petSortFields...)
	if err != nil {
		return errorResponse(c, err)
	}

	pets, total, err := h.service.ListPets(c.Context(), params)
	if err != nil {
		log.Printf("Error getting pets: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(pagination.Paginate(pets, total, params, "/api/pets"))
}

// HandleGetPetByID returns a single pet with its owner resolved.
func (h *PetHandler) HandleGetPetByID(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error getting pet %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return successResponse(c, pet)
}

// HandleCountPets returns the total number of pets.
func (h *PetHandler) HandleCountPets(c *fiber.Ctx) error {
	total, err := h.service.CountPets(c.Context())
	if err != nil {
		log.Printf("Error counting pets: %v", err)
		return errorResponse(c, err)
	}
	return successResponse(c, fiber.Map{"total": total})
}

// HandleGetPetsBySpecies returns pets whose species matches the path value as
// a case-insensitive substring.
func (h *PetHandler) HandleGetPetsBySpecies(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("limit"), c.Query("page"), "")
	if err != nil {
		return errorResponse(c, err)
	}

	species := c.Params("species")
	pets, total, err := h.service.ListBySpecies(c.Context(), species, params)
	if err != nil {
		log.Printf("Error getting pets by species %s: %v", species, err)
		return errorResponse(c, err)
	}

	basePath := fmt.Sprintf("/api/pets/species/%s", species)
	return c.JSON(pagination.Paginate(pets, total, params, basePath))
}
