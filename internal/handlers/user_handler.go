package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/middleware"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

// UserHandler handles HTTP requests for the admin-facing user profiles.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The whole
// group is administrator-only, reads included.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/user", middleware.RequireRoles(models.RoleAdmin))
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:userId", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:userId", h.HandleUpdateUser)
	userRoutes.Delete("/:userId", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.BadRequest("Invalid user id: %v", err)
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleCreateUser creates a user through the admin path. The caller never
// supplies a password; the account gets the seeded default one.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(user); err != nil {
		return validationError(err)
	}

	if err := h.service.CreateUser(&user); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser updates an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.BadRequest("Invalid user id: %v", err)
	}

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(user); err != nil {
		return validationError(err)
	}

	if err := h.service.UpdateUser(id, &user); err != nil {
		return err
	}
	return c.JSON(user)
}

// HandleDeleteUser deletes a user by their ID.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("userId")
	if err != nil {
		return apperrors.BadRequest("Invalid user id: %v", err)
	}
	if err := h.service.DeleteUser(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
