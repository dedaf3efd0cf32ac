package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
)

// GORMReservationRepository is a GORM implementation of ReservationRepository.
type GORMReservationRepository struct {
	db *gorm.DB
}

// NewGORMReservationRepository creates a new instance of GORMReservationRepository.
func NewGORMReservationRepository(db *gorm.DB) *GORMReservationRepository {
	return &GORMReservationRepository{db: db}
}

// withRelations narrows the preloaded Book and User to display-safe fields.
// Primary keys are included so GORM can match rows to their parent.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Book", func(db *gorm.DB) *gorm.DB {
			return db.Select("idLibro", "nombre", "editorial", "genero", "totalPaginas")
		}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("idUsuario", "nombre", "apellidoPaterno", "apellidoMaterno", "correoElectronico")
		})
}

// GetAll retrieves all reservations with their narrowed relations.
func (r *GORMReservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := withRelations(r.db).Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("failed to get all reservations: %w", err)
	}
	return reservations, nil
}

// GetByID retrieves a single reservation by its ID.
func (r *GORMReservationRepository) GetByID(id int) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := withRelations(r.db).First(&reservation, `"idReservacion" = ?`, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified reservation id %d was not found", id)
		}
		return nil, fmt.Errorf("failed to get reservation by ID %d: %w", id, err)
	}
	return &reservation, nil
}

// GetByFolio retrieves a single reservation by its folio code.
func (r *GORMReservationRepository) GetByFolio(folio string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := withRelations(r.db).First(&reservation, `"folioReservacion" = ?`, folio).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NotFound("Specified reservation by folio %s was not found", folio)
		}
		return nil, fmt.Errorf("failed to get reservation by folio %s: %w", folio, err)
	}
	return &reservation, nil
}

// Create creates a new reservation in the database.
func (r *GORMReservationRepository) Create(reservation *models.Reservation) error {
	if err := r.db.Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// Update updates an existing reservation in the database.
func (r *GORMReservationRepository) Update(reservation *models.Reservation) error {
	res := r.db.Omit("Book", "User").Save(reservation)
	if res.Error != nil {
		return fmt.Errorf("failed to update reservation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified reservation id %d was not found", reservation.ID)
	}
	return nil
}

// Delete deletes a reservation by its ID from the database.
func (r *GORMReservationRepository) Delete(id int) error {
	res := r.db.Delete(&models.Reservation{}, `"idReservacion" = ?`, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Specified reservation id %d was not found", id)
	}
	return nil
}
