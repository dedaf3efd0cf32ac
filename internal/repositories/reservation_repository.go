package repositories

import "biblioteca/internal/models"

// ReservationRepository defines the interface for reservation data access.
// Read operations populate the Book and User relations narrowed to their
// display-safe fields.
type ReservationRepository interface {
	GetAll() ([]models.Reservation, error)
	GetByID(id int) (*models.Reservation, error)
	GetByFolio(folio string) (*models.Reservation, error)
	Create(reservation *models.Reservation) error
	Update(reservation *models.Reservation) error
	Delete(id int) error
}
