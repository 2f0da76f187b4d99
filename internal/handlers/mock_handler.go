package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"petadoption/internal/apperrors"
	"petadoption/internal/services"
)

// defaultMockUserCount is how many users mockingusers generates when the
// client does not ask for a specific count.
const defaultMockUserCount = 50

// MockHandler handles HTTP requests for fixture data generation.
type MockHandler struct {
	service *services.MockingService
}

// NewMockHandler creates a new MockHandler.
func NewMockHandler(service *services.MockingService) *MockHandler {
	return &MockHandler{
		service: service,
	}
}

// RegisterRoutes registers the mock routes with the Fiber app.
func (h *MockHandler) RegisterRoutes(router fiber.Router) {
	mockRoutes := router.Group("/mocks")
	mockRoutes.Get("/mockingpets", h.HandleMockingPets)
	mockRoutes.Get("/mockingusers", h.HandleMockingUsers)
	mockRoutes.Post("/generateData", h.HandleGenerateData)
}

// HandleMockingPets returns the static five-record sample payload.
func (h *MockHandler) HandleMockingPets(c *fiber.Ctx) error {
	return successResponse(c, h.service.StaticPets())
}

// HandleMockingUsers generates users without persisting them.
func (h *MockHandler) HandleMockingUsers(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count <= 0 {
		count = defaultMockUserCount
	}

	users, err := h.service.GenerateUsers(count)
	if err != nil {
		log.Printf("Error generating mock users: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"payload": users,
		"total":   len(users),
	})
}

// generateDataRequest is the body for the generateData endpoint.
type generateDataRequest struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

// HandleGenerateData generates and persists fixture users and pets. Failures
// of individual records are reported in the results rather than aborting the
// batch.
func (h *MockHandler) HandleGenerateData(c *fiber.Ctx) error {
	var req generateDataRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, apperrors.Validation("invalid request body"))
	}

	results, err := h.service.SeedData(c.Context(), req.Users, req.Pets)
	if err != nil {
		log.Printf("Error generating data: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Data generated and inserted successfully",
		"results": results,
	})
}
