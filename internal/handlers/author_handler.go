package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/middleware"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

// AuthorHandler handles HTTP requests for catalog authors.
type AuthorHandler struct {
	service  *services.AuthorService
	validate *validator.Validate
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(service *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the author routes with the Fiber app. Reads are
// open to any authenticated user; mutations are administrator-only.
func (h *AuthorHandler) RegisterRoutes(router fiber.Router) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	authorRoutes := router.Group("/author")
	authorRoutes.Get("/", h.HandleGetAuthors)
	authorRoutes.Get("/:authorId", h.HandleGetAuthorByID)
	authorRoutes.Post("/", adminOnly, h.HandleCreateAuthor)
	authorRoutes.Put("/:authorId", adminOnly, h.HandleUpdateAuthor)
	authorRoutes.Delete("/:authorId", adminOnly, h.HandleDeleteAuthor)
}

// HandleGetAuthors retrieves all authors.
func (h *AuthorHandler) HandleGetAuthors(c *fiber.Ctx) error {
	authors, err := h.service.GetAllAuthors()
	if err != nil {
		return err
	}
	return c.JSON(authors)
}

// HandleGetAuthorByID retrieves a single author by its ID.
func (h *AuthorHandler) HandleGetAuthorByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("authorId")
	if err != nil {
		return apperrors.BadRequest("Invalid author id: %v", err)
	}
	author, err := h.service.GetAuthorByID(id)
	if err != nil {
		return err
	}
	return c.JSON(author)
}

// HandleCreateAuthor creates a new author.
func (h *AuthorHandler) HandleCreateAuthor(c *fiber.Ctx) error {
	var author models.Author
	if err := c.BodyParser(&author); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(author); err != nil {
		return validationError(err)
	}

	if err := h.service.CreateAuthor(&author); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(author)
}

// HandleUpdateAuthor updates an existing author.
func (h *AuthorHandler) HandleUpdateAuthor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("authorId")
	if err != nil {
		return apperrors.BadRequest("Invalid author id: %v", err)
	}

	var author models.Author
	if err := c.BodyParser(&author); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(author); err != nil {
		return validationError(err)
	}

	if err := h.service.UpdateAuthor(id, &author); err != nil {
		return err
	}
	return c.JSON(author)
}

// HandleDeleteAuthor deletes an author by its ID.
func (h *AuthorHandler) HandleDeleteAuthor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("authorId")
	if err != nil {
		return apperrors.BadRequest("Invalid author id: %v", err)
	}
	if err := h.service.DeleteAuthor(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Author deleted successfully"})
}
