package repositories

import "biblioteca/internal/models"

// BookRepository defines the interface for book data access.
type BookRepository interface {
	GetAll() ([]models.Book, error)
	GetByID(id int) (*models.Book, error)
	SearchByTitle(title string) ([]models.Book, error)
	SearchByGenre(genre string) ([]models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id int) error
}
