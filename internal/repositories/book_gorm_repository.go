package repositories

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{db: db}
}

// GetAll retrieves all books with their author from the database.
func (r *GORMBookRepository) GetAll() ([]models.Book, error) {
	var books []models.Book
	if err := r.db.Preload("Author").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book by its ID, with its author populated.
func (r *GORMBookRepository) GetByID(id int) (*models.Book, error) {
	var book models.Book
	if err := r.db.Preload("Author").First(&book, `"idLibro" = ?`, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified book id %d was not found", id)
		}
		return nil, fmt.Errorf("failed to get book by ID %d: %w", id, err)
	}
	return &book, nil
}

// SearchByTitle retrieves books whose title contains the given substring,
// case-insensitively.
func (r *GORMBookRepository) SearchByTitle(title string) ([]models.Book, error) {
	var books []models.Book
	pattern := "%" + strings.ToLower(title) + "%"
	if err := r.db.Preload("Author").Where("LOWER(nombre) LIKE ?", pattern).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to search books by title: %w", err)
	}
	return books, nil
}

// SearchByGenre retrieves books whose genre contains the given substring,
// case-insensitively.
func (r *GORMBookRepository) SearchByGenre(genre string) ([]models.Book, error) {
	var books []models.Book
	pattern := "%" + strings.ToLower(genre) + "%"
	if err := r.db.Preload("Author").Where("LOWER(genero) LIKE ?", pattern).Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to search books by genre: %w", err)
	}
	return books, nil
}

// Create creates a new book in the database.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Update updates an existing book in the database.
func (r *GORMBookRepository) Update(book *models.Book) error {
	res := r.db.Save(book)
	if res.Error != nil {
		return fmt.Errorf("failed to update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified book id %d was not found", book.ID)
	}
	return nil
}

// Delete deletes a book by its ID from the database.
func (r *GORMBookRepository) Delete(id int) error {
	res := r.db.Delete(&models.Book{}, `"idLibro" = ?`, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified book id %d was not found", id)
	}
	return nil
}
