package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"petadoption/internal/services"
	"petadoption/pkg/pagination"
)

// userSortFields are the fields clients may sort the user listing by.
var userSortFields = []string{"createdAt", "updatedAt", "first_name", "last_name", "email"}

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/count/total", h.HandleCountUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
}

// HandleGetUsers returns a paginated user list with pet references resolved.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	params, err := pagination.Parse(c.Query("limit"), c.Query("page"), c.Query("sort"), userSortFields...)
	if err != nil {
		return errorResponse(c, err)
	}

	users, total, err := h.service.ListUsers(c.Context(), params)
	if err != nil {
		log.Printf("Error getting users: %v", err)
		return errorResponse(c, err)
	}

	return c.JSON(pagination.Paginate(users, total, params, "/api/users"))
}

// HandleGetUserByID returns a single user with pet references resolved.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error getting user %s: %v", c.Params("id"), err)
		return errorResponse(c, err)
	}
	return successResponse(c, user)
}

// HandleCountUsers returns the total number of users.
func (h *UserHandler) HandleCountUsers(c *fiber.Ctx) error {
	total, err := h.service.CountUsers(c.Context())
	if err != nil {
		log.Printf("Error counting users: %v", err)
		return errorResponse(c, err)
	}
	return successResponse(c, fiber.Map{"total": total})
}
