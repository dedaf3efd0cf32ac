package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterPublicRoutes registers login and account creation. Fiber matches
// in registration order, so these must be mounted before any authentication
// middleware attaches to the shared prefix.
func (h *AuthHandler) RegisterPublicRoutes(public fiber.Router) {
	public.Post("/auth/login", h.HandleLogin)
	public.Post("/auth/newAccount", h.HandleNewAccount)
}

// RegisterProtectedRoutes registers the password change, which requires a
// bearer token.
func (h *AuthHandler) RegisterProtectedRoutes(protected fiber.Router) {
	protected.Post("/auth/changePassword", h.HandleChangePassword)
}

// CredentialsRequest carries the email (as username) and password pair used
// by both login and the default-password change.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// NewAccountRequest is the payload for self-service account creation.
type NewAccountRequest struct {
	FirstName      string `json:"nombre" validate:"required"`
	LastName       string `json:"apellidoPaterno" validate:"required"`
	MotherLastName string `json:"apellidoMaterno"`
	Age            string `json:"edad" validate:"required"`
	Email          string `json:"correoElectronico" validate:"required,email"`
	Nickname       string `json:"nombreUsuario" validate:"required,alpha"`
	Password       string `json:"contrasena" validate:"required,min=8"`
}

// HandleLogin authenticates a user and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"access_token": token})
}

// HandleNewAccount handles self-service registration. The created account
// always gets the default "Usuario" role.
func (h *AuthHandler) HandleNewAccount(c *fiber.Ctx) error {
	var req NewAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	user := &models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MotherLastName: req.MotherLastName,
		Age:            req.Age,
		Email:          req.Email,
		Nickname:       req.Nickname,
	}
	created, err := h.authService.Register(user, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleChangePassword replaces the seeded default password with the
// supplied one.
func (h *AuthHandler) HandleChangePassword(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	if err := h.authService.ChangeDefaultPassword(req.Username, req.Password); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Users password was correctly updated"})
}
