package services_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

func TestBookService_CreateBook(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockAuthorRepo := new(MockAuthorRepository)
	service := services.NewBookService(mockBookRepo, mockAuthorRepo)

	author := &models.Author{ID: 6, FirstName: "Hermann", LastName: "Hesse"}
	book := &models.Book{Title: "El lobo estepario", Genre: "Novela", AuthorID: 6}

	// A valid author reference lets the book through with that author id.
	mockAuthorRepo.On("GetByID", 6).Return(author, nil).Once()
	mockBookRepo.On("Create", mock.MatchedBy(func(b *models.Book) bool { return b.AuthorID == 6 })).
		Return(nil).Once()
	err := service.CreateBook(book)
	assert.NoError(t, err)
	mockBookRepo.AssertExpectations(t)
	mockAuthorRepo.AssertExpectations(t)
}

func TestBookService_CreateBook_MissingAuthor(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockAuthorRepo := new(MockAuthorRepository)
	service := services.NewBookService(mockBookRepo, mockAuthorRepo)

	// An absent author id fails with not found and the book is never saved.
	mockAuthorRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified author id 99 was not found")).Once()
	err := service.CreateBook(&models.Book{Title: "Orphan", AuthorID: 99})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	mockBookRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockAuthorRepo.AssertExpectations(t)
}

func TestBookService_UpdateBook(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockAuthorRepo := new(MockAuthorRepository)
	service := services.NewBookService(mockBookRepo, mockAuthorRepo)

	existing := &models.Book{ID: 1, Title: "El lobo estepario", AuthorID: 6}
	author := &models.Author{ID: 6}

	mockBookRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockAuthorRepo.On("GetByID", 6).Return(author, nil).Once()
	mockBookRepo.On("Update", mock.MatchedBy(func(b *models.Book) bool { return b.ID == 1 })).
		Return(nil).Once()
	err := service.UpdateBook(1, &models.Book{Title: "Der Steppenwolf", AuthorID: 6})
	assert.NoError(t, err)
	mockBookRepo.AssertExpectations(t)
	mockAuthorRepo.AssertExpectations(t)

	// Updating an absent book fails before the author is even checked.
	mockBookRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified book id 99 was not found")).Once()
	err = service.UpdateBook(99, &models.Book{Title: "Ghost", AuthorID: 6})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	mockBookRepo.AssertExpectations(t)

	// Re-pointing a book at an absent author fails with not found.
	mockBookRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockAuthorRepo.On("GetByID", 404).
		Return(nil, apperrors.NotFound("Specified author id 404 was not found")).Once()
	err = service.UpdateBook(1, &models.Book{Title: "El lobo estepario", AuthorID: 404})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	mockAuthorRepo.AssertExpectations(t)
}

func TestBookService_GetAllBooks(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockAuthorRepo := new(MockAuthorRepository)
	service := services.NewBookService(mockBookRepo, mockAuthorRepo)

	// An empty catalog is reported as not found.
	mockBookRepo.On("GetAll").Return([]models.Book{}, nil).Once()
	_, err := service.GetAllBooks()
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	mockBookRepo.AssertExpectations(t)
}

func TestBookService_Search(t *testing.T) {
	mockBookRepo := new(MockBookRepository)
	mockAuthorRepo := new(MockAuthorRepository)
	service := services.NewBookService(mockBookRepo, mockAuthorRepo)

	matches := []models.Book{{ID: 1, Title: "El lobo estepario", Genre: "Novela"}}
	mockBookRepo.On("SearchByTitle", "lobo").Return(matches, nil).Once()
	books, err := service.SearchBooksByTitle("lobo")
	assert.NoError(t, err)
	assert.Len(t, books, 1)
	mockBookRepo.AssertExpectations(t)

	// Unlike list endpoints, a search with no matches is an empty list,
	// not an error.
	mockBookRepo.On("SearchByGenre", "poesia").Return([]models.Book{}, nil).Once()
	books, err = service.SearchBooksByGenre("poesia")
	assert.NoError(t, err)
	assert.Empty(t, books)
	mockBookRepo.AssertExpectations(t)
}
