package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"petadoption/internal/apperrors"
	"petadoption/internal/services"
	"petadoption/pkg/pagination"
)

// AdoptionHandler handles HTTP requests for the adoption workflow.
type AdoptionHandler struct {
	service *services.AdoptionService
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(service *services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{
		service: service,
	}
}

// RegisterRoutes registers the adoption routes with the Fiber app.
func (h *AdoptionHandler) RegisterRoutes(router fiber.Router) {
	adoptionRoutes := router.Group("/adoption")
	adoptionRoutes.Get("/", h.HandleGetPets)
	adoptionRoutes.Get("/stats/overview", h.HandleGetStats)
	adoptionRoutes.Get("/user/:userId", h.HandleGetPetsByUser)
	adoptionRoutes.Get("/:id", h.HandleGetPetByID)
	adoptionRoutes.Post("/:petId/adopt", h.HandleAdopt)
	adoptionRoutes.Put("/:petId/return", h.HandleReturn)
}

// parseAgeBound parses an optional age query parameter.
func parseAgeBound(value, name string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("%s must be a number", name))
	}
	return &n, nil
}

// HandleGetPets returns a paginated pet list with optional species and age
// range filters.
func (h *AdoptionHandler) HandleGetPets(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("limit"), c.Query("page"), "")
	if err != nil {
		return errorResponse(c, err)
	}

	ageMin, err := parseAgeBound(c.Query("age_min"), "age_min")
	if err != nil {
		return errorResponse(c, err)
	}
	ageMax, err := parseAgeBound(c.Query("age_max"), "age_max")
	if err != nil {
		return errorResponse(c, err)
	}

	filter := services.AdoptionFilter{
		Species: c.Query("species"),
		AgeMin:  ageMin,
		AgeMax:  ageMax,
	}

	pets, total, err := h.service.ListPets(c.Context(), filter, params)
	if err != nil {
		log.Printf("Error getting pets for adoption: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(pagination.Paginate(pets, total, params, "/api/adoption"))
}

// HandleGetPetByID returns a single pet with its owner resolved.
func (h *AdoptionHandler) HandleGetPetByID(c *fiber.Ctx) error {
	pet, err := h.service.GetPet(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error getting pet %s for adoption: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return successResponse(c, pet)
}

// adoptionRequest is the body for the adopt and return endpoints.
type adoptionRequest struct {
	UserID string `json:"userId"`
}

// HandleAdopt assigns a pet to the adopting user.
func (h *AdoptionHandler) HandleAdopt(c *fiber.Ctx) error {
	var req adoptionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, apperrors.Validation("invalid request body"))
	}

	petID := c.Params("petId")
	pet, err := h.service.Adopt(c.Context(), petID, req.UserID)
	if err != nil {
		log.Printf("Error adopting pet %s: %v", petID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Pet adopted successfully!",
		"payload": pet,
	})
}

// HandleReturn releases a pet back for adoption.
func (h *AdoptionHandler) HandleReturn(c *fiber.Ctx) error {
	var req adoptionRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, apperrors.Validation("invalid request body"))
	}

	petID := c.Params("petId")
	pet, err := h.service.Return(c.Context(), petID, req.UserID)
	if err != nil {
		log.Printf("Error returning pet %s: %v", petID, err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Pet returned successfully for adoption",
		"payload": pet,
	})
}

// HandleGetPetsByUser returns a paginated list of the pets a user owns.
func (h *AdoptionHandler) HandleGetPetsByUser(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("limit"), c.Query("page"), "")
	if err != nil {
		return errorResponse(c, err)
	}

	userID := c.Params("userId")
	pets, total, err := h.service.ListByUser(c.Context(), userID, params)
	if err != nil {
		log.Printf("Error getting pets for user %s: %v", userID, err)
		return errorResponse(c, err)
	}

	basePath := fmt.Sprintf("/api/adoption/user/%s", userID)
	return c.JSON(pagination.Paginate(pets, total, params, basePath))
}

// HandleGetStats returns the aggregate adoption statistics.
func (h *AdoptionHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		log.Printf("Error getting adoption stats: %v", err)
		return errorResponse(c, err)
	}
	return successResponse(c, stats)
}
