package services

import (
	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
)

// BookService handles business logic related to catalog books.
type BookService struct {
	bookRepo   repositories.BookRepository
	authorRepo repositories.AuthorRepository
}

// NewBookService creates a new BookService.
func NewBookService(bookRepo repositories.BookRepository, authorRepo repositories.AuthorRepository) *BookService {
	return &BookService{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// GetAllBooks retrieves all books with their author populated. An empty
// catalog is reported as a not-found condition, matching the reference
// behavior of the API.
func (s *BookService) GetAllBooks() ([]models.Book, error) {
	books, err := s.bookRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, apperrors.NotFound("Books were not found in database")
	}
	return books, nil
}

// GetBookByID retrieves a single book by its ID.
func (s *BookService) GetBookByID(id int) (*models.Book, error) {
	return s.bookRepo.GetByID(id)
}

// SearchBooksByTitle retrieves books whose title contains the substring.
// A search with no matches returns an empty list, not an error.
func (s *BookService) SearchBooksByTitle(title string) ([]models.Book, error) {
	return s.bookRepo.SearchByTitle(title)
}

// SearchBooksByGenre retrieves books whose genre contains the substring.
func (s *BookService) SearchBooksByGenre(genre string) ([]models.Book, error) {
	return s.bookRepo.SearchByGenre(genre)
}

// CreateBook creates a new book after verifying the referenced author exists.
func (s *BookService) CreateBook(book *models.Book) error {
	if _, err := s.authorRepo.GetByID(book.AuthorID); err != nil {
		return err
	}
	return s.bookRepo.Create(book)
}

// UpdateBook updates an existing book, failing if either the book or the
// referenced author is absent.
func (s *BookService) UpdateBook(id int, book *models.Book) error {
	if _, err := s.bookRepo.GetByID(id); err != nil {
		return err
	}
	if _, err := s.authorRepo.GetByID(book.AuthorID); err != nil {
		return err
	}
	book.ID = id
	book.Author = nil
	return s.bookRepo.Update(book)
}

// DeleteBook hard-deletes a book by its ID.
func (s *BookService) DeleteBook(id int) error {
	return s.bookRepo.Delete(id)
}
