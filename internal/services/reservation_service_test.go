package services_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

func newReservationService(resRepo *MockReservationRepository, bookRepo *MockBookRepository, userRepo *MockUserRepository) *services.ReservationService {
	return services.NewReservationService(resRepo, bookRepo, userRepo, nil)
}

func TestReservationService_CreateReservation(t *testing.T) {
	resRepo := new(MockReservationRepository)
	bookRepo := new(MockBookRepository)
	userRepo := new(MockUserRepository)
	service := newReservationService(resRepo, bookRepo, userRepo)

	dueDate := time.Now().AddDate(0, 0, 14)
	request := &models.Reservation{BookID: 15, UserID: 14, DueDate: dueDate}

	bookRepo.On("GetByID", 15).Return(&models.Book{ID: 15, Title: "El lobo estepario"}, nil).Once()
	userRepo.On("GetByID", 14).Return(&models.User{ID: 14, FirstName: "Maria"}, nil).Once()

	var captured *models.Reservation
	resRepo.On("Create", mock.AnythingOfType("*models.Reservation")).
		Run(func(args mock.Arguments) {
			captured = args.Get(0).(*models.Reservation)
			captured.ID = 42 // simulate the database assigning a key
		}).
		Return(nil).Once()
	resRepo.On("GetByID", 42).
		Return(&models.Reservation{
			ID:      42,
			BookID:  15,
			UserID:  14,
			DueDate: dueDate,
			Status:  models.StatusActive,
			Folio:   "deadbeefdeadbeefdeadbeefdeadbeef",
			Book:    &models.Book{ID: 15, Title: "El lobo estepario", Publisher: "Editorial patito"},
			User:    &models.User{ID: 14, FirstName: "Maria", Email: "maria@gmail.com"},
		}, nil).Once()

	created, err := service.CreateReservation(request)
	assert.NoError(t, err)

	// Folio and status are server-computed.
	assert.NotEmpty(t, captured.Folio)
	assert.Equal(t, models.StatusActive, captured.Status)
	assert.False(t, captured.ReservedAt.IsZero())

	// The result is the re-fetched record with its relations populated.
	assert.Equal(t, 42, created.ID)
	assert.NotNil(t, created.Book)
	assert.NotNil(t, created.User)
	resRepo.AssertExpectations(t)
	bookRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestReservationService_CreateReservation_MissingReferences(t *testing.T) {
	resRepo := new(MockReservationRepository)
	bookRepo := new(MockBookRepository)
	userRepo := new(MockUserRepository)
	service := newReservationService(resRepo, bookRepo, userRepo)

	// An absent book rejects the reservation before the user is checked.
	bookRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified book id 99 was not found")).Once()
	_, err := service.CreateReservation(&models.Reservation{BookID: 99, UserID: 14})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	bookRepo.AssertExpectations(t)

	// An absent user also rejects it.
	bookRepo.On("GetByID", 15).Return(&models.Book{ID: 15}, nil).Once()
	userRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified user id 99 was not found")).Once()
	_, err = service.CreateReservation(&models.Reservation{BookID: 15, UserID: 99})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	resRepo.AssertNotCalled(t, "Create", mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestReservationService_UpdateReservation(t *testing.T) {
	resRepo := new(MockReservationRepository)
	bookRepo := new(MockBookRepository)
	userRepo := new(MockUserRepository)
	service := newReservationService(resRepo, bookRepo, userRepo)

	existing := &models.Reservation{
		ID:         42,
		BookID:     15,
		UserID:     14,
		Folio:      "deadbeefdeadbeefdeadbeefdeadbeef",
		Status:     models.StatusActive,
		ReservedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	// Closing a reservation keeps its folio even if the caller supplies one.
	resRepo.On("GetByID", 42).Return(existing, nil).Once()
	bookRepo.On("GetByID", 15).Return(&models.Book{ID: 15}, nil).Once()
	userRepo.On("GetByID", 14).Return(&models.User{ID: 14}, nil).Once()
	resRepo.On("Update", mock.MatchedBy(func(r *models.Reservation) bool {
		return r.ID == 42 && r.Folio == existing.Folio && r.Status == models.StatusClosed
	})).Return(nil).Once()
	resRepo.On("GetByID", 42).Return(&models.Reservation{ID: 42, Status: models.StatusClosed, Folio: existing.Folio}, nil).Once()

	updated, err := service.UpdateReservation(42, &models.Reservation{
		BookID:  15,
		UserID:  14,
		DueDate: time.Now(),
		Folio:   "client-supplied-folio",
		Status:  models.StatusClosed,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusClosed, updated.Status)
	assert.Equal(t, existing.Folio, updated.Folio)
	resRepo.AssertExpectations(t)

	// An absent reservation fails with not found.
	resRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified reservation id 99 was not found")).Once()
	_, err = service.UpdateReservation(99, &models.Reservation{BookID: 15, UserID: 14})
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	resRepo.AssertExpectations(t)
}

func TestReservationService_DeleteReservation(t *testing.T) {
	resRepo := new(MockReservationRepository)
	bookRepo := new(MockBookRepository)
	userRepo := new(MockUserRepository)
	service := newReservationService(resRepo, bookRepo, userRepo)

	resRepo.On("GetByID", 42).Return(&models.Reservation{ID: 42}, nil).Once()
	resRepo.On("Delete", 42).Return(nil).Once()
	assert.NoError(t, service.DeleteReservation(42))
	resRepo.AssertExpectations(t)

	resRepo.On("GetByID", 99).
		Return(nil, apperrors.NotFound("Specified reservation id 99 was not found")).Once()
	err := service.DeleteReservation(99)
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	resRepo.AssertExpectations(t)
}

func TestReservationService_GetAllReservations_Empty(t *testing.T) {
	resRepo := new(MockReservationRepository)
	bookRepo := new(MockBookRepository)
	userRepo := new(MockUserRepository)
	service := newReservationService(resRepo, bookRepo, userRepo)

	resRepo.On("GetAll").Return([]models.Reservation{}, nil).Once()
	_, err := service.GetAllReservations()
	assert.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, apperrors.StatusCode(err))
	resRepo.AssertExpectations(t)
}
