package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
)

// GORMAuthorRepository is a GORM implementation of AuthorRepository.
type GORMAuthorRepository struct {
	db *gorm.DB
}

// NewGORMAuthorRepository creates a new instance of GORMAuthorRepository.
func NewGORMAuthorRepository(db *gorm.DB) *GORMAuthorRepository {
	return &GORMAuthorRepository{db: db}
}

// GetAll retrieves all authors from the database.
func (r *GORMAuthorRepository) GetAll() ([]models.Author, error) {
	var authors []models.Author
	if err := r.db.Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all authors: %w", err)
	}
	return authors, nil
}

// GetByID retrieves a single author by its ID from the database.
func (r *GORMAuthorRepository) GetByID(id int) (*models.Author, error) {
	var author models.Author
	if err := r.db.First(&author, `"idAutor" = ?`, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified author id %d was not found", id)
		}
		return nil, fmt.Errorf("failed to get author by ID %d: %w", id, err)
	}
	return &author, nil
}

// Create creates a new author in the database.
func (r *GORMAuthorRepository) Create(author *models.Author) error {
	if err := r.db.Create(author).Error; err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

// Update updates an existing author in the database.
func (r *GORMAuthorRepository) Update(author *models.Author) error {
	res := r.db.Save(author)
	if res.Error != nil {
		return fmt.Errorf("failed to update author: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified author id %d was not found", author.ID)
	}
	return nil
}

// Delete deletes an author by its ID from the database.
func (r *GORMAuthorRepository) Delete(id int) error {
	res := r.db.Delete(&models.Author{}, `"idAutor" = ?`, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete author: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified author id %d was not found", id)
	}
	return nil
}
