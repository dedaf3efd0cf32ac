package services

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
)

// UserService handles business logic for the admin-facing user profiles.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetAllUsers retrieves all users. An empty collection is reported as a
// not-found condition, matching the reference behavior of the API.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("Users were not found in database")
	}
	return users, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	return s.repo.GetByID(id)
}

// CreateUser creates a user through the admin path. The account always
// receives the seeded default password; the owner must change it through
// auth/changePassword before picking a personal one.
func (s *UserService) CreateUser(user *models.User) error {
	taken, err := s.repo.EmailTaken(user.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.BadRequest("Specified email %s already exists, use another email or login to your account", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(models.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}
	user.Password = string(hashedPassword)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	return s.repo.Create(user)
}

// UpdateUser updates an existing user. The email uniqueness check excludes
// the record being updated, so keeping the same email is not a conflict.
// The stored password is preserved; it only changes through the auth flow.
func (s *UserService) UpdateUser(id int, user *models.User) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	taken, err := s.repo.EmailTaken(user.Email, id)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.BadRequest("Specified email %s already exists, use another email", user.Email)
	}

	user.ID = id
	user.Password = existing.Password
	user.CreatedAt = existing.CreatedAt
	return s.repo.Update(user)
}

// DeleteUser hard-deletes a user by their ID.
func (s *UserService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}
