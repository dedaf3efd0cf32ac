package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
	"biblioteca/pkg/rabbitmq"
)

// ReservationService handles the reservation workflow: CRUD plus the
// cross-entity checks and derived fields computed at creation time.
type ReservationService struct {
	reservationRepo repositories.ReservationRepository
	bookRepo        repositories.BookRepository
	userRepo        repositories.UserRepository
	mqClient        *rabbitmq.Client
}

// NewReservationService creates a new ReservationService. The RabbitMQ
// client may be nil; event publication is then skipped.
func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	bookRepo repositories.BookRepository,
	userRepo repositories.UserRepository,
	mqClient *rabbitmq.Client,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		bookRepo:        bookRepo,
		userRepo:        userRepo,
		mqClient:        mqClient,
	}
}

// GetAllReservations retrieves all reservations with their narrowed
// book/user relations. An empty collection is reported as not found.
func (s *ReservationService) GetAllReservations() ([]models.Reservation, error) {
	reservations, err := s.reservationRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, apperrors.NotFound("No reservations were found in database")
	}
	return reservations, nil
}

// GetReservationByID retrieves a single reservation by its ID.
func (s *ReservationService) GetReservationByID(id int) (*models.Reservation, error) {
	return s.reservationRepo.GetByID(id)
}

// GetReservationByFolio retrieves a single reservation by its folio code.
func (s *ReservationService) GetReservationByFolio(folio string) (*models.Reservation, error) {
	return s.reservationRepo.GetByFolio(folio)
}

// CreateReservation creates a new reservation. The referenced book and user
// must both exist; the folio code and the initial "Activa" status are
// computed server-side, and the reservation date defaults to today.
func (s *ReservationService) CreateReservation(reservation *models.Reservation) (*models.Reservation, error) {
	if _, err := s.bookRepo.GetByID(reservation.BookID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(reservation.UserID); err != nil {
		return nil, err
	}

	reservation.ID = 0
	reservation.Folio = generateFolio()
	reservation.Status = models.StatusActive
	if reservation.ReservedAt.IsZero() {
		reservation.ReservedAt = time.Now()
	}
	reservation.Book = nil
	reservation.User = nil

	if err := s.reservationRepo.Create(reservation); err != nil {
		return nil, err
	}

	created, err := s.reservationRepo.GetByID(reservation.ID)
	if err != nil {
		return nil, err
	}

	s.publishEvent("reservation.created", created)
	return created, nil
}

// UpdateReservation updates an existing reservation. The reservation itself
// and the referenced book and user must all exist. The folio is immutable;
// whatever the caller supplies is discarded in favor of the stored value.
func (s *ReservationService) UpdateReservation(id int, reservation *models.Reservation) (*models.Reservation, error) {
	existing, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.bookRepo.GetByID(reservation.BookID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(reservation.UserID); err != nil {
		return nil, err
	}

	reservation.ID = id
	reservation.Folio = existing.Folio
	if reservation.Status == "" {
		reservation.Status = existing.Status
	}
	if reservation.ReservedAt.IsZero() {
		reservation.ReservedAt = existing.ReservedAt
	}
	reservation.Book = nil
	reservation.User = nil

	if err := s.reservationRepo.Update(reservation); err != nil {
		return nil, err
	}

	updated, err := s.reservationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	s.publishEvent("reservation.updated", updated)
	return updated, nil
}

// DeleteReservation hard-deletes a reservation by its ID.
func (s *ReservationService) DeleteReservation(id int) error {
	if _, err := s.reservationRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.reservationRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("reservation.deleted", &models.Reservation{ID: id})
	return nil
}

// publishEvent emits a reservation lifecycle event. Publication failures are
// logged and never fail the request.
func (s *ReservationService) publishEvent(event string, reservation *models.Reservation) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"event":         event,
		"idReservacion": reservation.ID,
		"folio":         reservation.Folio,
		"estatus":       string(reservation.Status),
	}
	if err := s.mqClient.PublishReservationEvent(payload); err != nil {
		logrus.WithField("event", event).Warnf("failed to publish reservation event: %v", err)
	}
}

// generateFolio derives the human-facing tracking code from a v4 UUID,
// rendered as a bare base-16 string. Collisions are not checked; they are
// astronomically unlikely for the target load.
func generateFolio() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
