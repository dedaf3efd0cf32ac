package repositories

import "biblioteca/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// EmailTaken reports whether another record already uses the email.
	// A non-zero excludeID leaves that record out of the check, so a user
	// updated with their own unchanged email is not rejected.
	EmailTaken(email string, excludeID int) (bool, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdatePassword(email, hashedPassword string) error
	Delete(id int) error
}
