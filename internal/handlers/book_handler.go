package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/middleware"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

// BookHandler handles HTTP requests for catalog books.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the book routes with the Fiber app. The search
// route is registered before the ID route so "search" is not captured as a
// path parameter.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	bookRoutes := router.Group("/book")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Get("/search", h.HandleSearchBooks)
	bookRoutes.Get("/:bookId", h.HandleGetBookByID)
	bookRoutes.Post("/", adminOnly, h.HandleCreateBook)
	bookRoutes.Put("/:bookId", adminOnly, h.HandleUpdateBook)
	bookRoutes.Delete("/:bookId", adminOnly, h.HandleDeleteBook)
}

// HandleGetBooks retrieves all books with their author populated.
func (h *BookHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks()
	if err != nil {
		return err
	}
	return c.JSON(books)
}

// HandleSearchBooks filters books by title or genre substring, supplied as
// the "nombre" or "genero" query parameter.
func (h *BookHandler) HandleSearchBooks(c *fiber.Ctx) error {
	if title := c.Query("nombre"); title != "" {
		books, err := h.service.SearchBooksByTitle(title)
		if err != nil {
			return err
		}
		return c.JSON(books)
	}
	if genre := c.Query("genero"); genre != "" {
		books, err := h.service.SearchBooksByGenre(genre)
		if err != nil {
			return err
		}
		return c.JSON(books)
	}
	return apperrors.BadRequest("A 'nombre' or 'genero' query parameter is required")
}

// HandleGetBookByID retrieves a single book by its ID.
func (h *BookHandler) HandleGetBookByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("bookId")
	if err != nil {
		return apperrors.BadRequest("Invalid book id: %v", err)
	}
	book, err := h.service.GetBookByID(id)
	if err != nil {
		return err
	}
	return c.JSON(book)
}

// HandleCreateBook creates a new book after the referenced author is verified.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(book); err != nil {
		return validationError(err)
	}

	if err := h.service.CreateBook(&book); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// HandleUpdateBook updates an existing book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("bookId")
	if err != nil {
		return apperrors.BadRequest("Invalid book id: %v", err)
	}

	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(book); err != nil {
		return validationError(err)
	}

	if err := h.service.UpdateBook(id, &book); err != nil {
		return err
	}
	return c.JSON(book)
}

// HandleDeleteBook deletes a book by its ID.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	id, err := c.ParamsInt("bookId")
	if err != nil {
		return apperrors.BadRequest("Invalid book id: %v", err)
	}
	if err := h.service.DeleteBook(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Book deleted successfully"})
}
