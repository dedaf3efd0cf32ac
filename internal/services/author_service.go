package services

import (
	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
)

// AuthorService handles business logic related to catalog authors.
type AuthorService struct {
	repo repositories.AuthorRepository
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(repo repositories.AuthorRepository) *AuthorService {
	return &AuthorService{repo: repo}
}

// GetAllAuthors retrieves all authors. An empty catalog is reported as a
// not-found condition, matching the reference behavior of the API.
func (s *AuthorService) GetAllAuthors() ([]models.Author, error) {
	authors, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, apperrors.NotFound("Authors were not found in database")
	}
	return authors, nil
}

// GetAuthorByID retrieves a single author by its ID.
func (s *AuthorService) GetAuthorByID(id int) (*models.Author, error) {
	return s.repo.GetByID(id)
}

// CreateAuthor creates a new author.
func (s *AuthorService) CreateAuthor(author *models.Author) error {
	return s.repo.Create(author)
}

// UpdateAuthor updates an existing author, failing if the target is absent.
func (s *AuthorService) UpdateAuthor(id int, author *models.Author) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	author.ID = id
	return s.repo.Update(author)
}

// DeleteAuthor hard-deletes an author by its ID.
func (s *AuthorService) DeleteAuthor(id int) error {
	return s.repo.Delete(id)
}
