package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{db: db}
}

// GetAll retrieves all users from the database.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, `"idUsuario" = ?`, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified user id %d was not found", id)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, `"correoElectronico" = ?`, email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified email %s does not exist", email)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// EmailTaken reports whether the email is used by a record other than excludeID.
func (r *GORMUserRepository) EmailTaken(email string, excludeID int) (bool, error) {
	query := r.db.Model(&models.User{}).Where(`"correoElectronico" = ?`, email)
	if excludeID != 0 {
		query = query.Where(`"idUsuario" <> ?`, excludeID)
	}
	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	return true, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update updates an existing user in the database.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Save(user)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified user id %d was not found", user.ID)
	}
	return nil
}

// UpdatePassword replaces the stored password hash for the given email.
func (r *GORMUserRepository) UpdatePassword(email, hashedPassword string) error {
	res := r.db.Model(&models.User{}).
		Where(`"correoElectronico" = ?`, email).
		Update("contrasena", hashedPassword)
	if res.Error != nil {
		return fmt.Errorf("failed to update password for %s: %w", email, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified email %s does not exist", email)
	}
	return nil
}

// Delete deletes a user by their ID from the database.
func (r *GORMUserRepository) Delete(id int) error {
	res := r.db.Delete(&models.User{}, `"idUsuario" = ?`, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified user id %d was not found", id)
	}
	return nil
}
