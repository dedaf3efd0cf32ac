package repositories

import "biblioteca/internal/models"

// AuthorRepository defines the interface for author data access.
type AuthorRepository interface {
	GetAll() ([]models.Author, error)
	GetByID(id int) (*models.Author, error)
	Create(author *models.Author) error
	Update(author *models.Author) error
	Delete(id int) error
}
