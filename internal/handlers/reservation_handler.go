package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/services"
)

// ReservationHandler handles HTTP requests for book reservations.
type ReservationHandler struct {
	service  *services.ReservationService
	validate *validator.Validate
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(service *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the reservation routes with the Fiber app.
func (h *ReservationHandler) RegisterRoutes(router fiber.Router) {
	reservationRoutes := router.Group("/reservation")
	reservationRoutes.Get("/", h.HandleGetReservations)
	reservationRoutes.Get("/folio/:folio", h.HandleGetReservationByFolio)
	reservationRoutes.Get("/:reservationId", h.HandleGetReservationByID)
	reservationRoutes.Post("/", h.HandleCreateReservation)
	reservationRoutes.Put("/:reservationId", h.HandleUpdateReservation)
	reservationRoutes.Delete("/:reservationId", h.HandleDeleteReservation)
}

// HandleGetReservations retrieves all reservations with their narrowed
// book/user relations.
func (h *ReservationHandler) HandleGetReservations(c *fiber.Ctx) error {
	reservations, err := h.service.GetAllReservations()
	if err != nil {
		return err
	}
	return c.JSON(reservations)
}

// HandleGetReservationByID retrieves a single reservation by its ID.
func (h *ReservationHandler) HandleGetReservationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("reservationId")
	if err != nil {
		return apperrors.BadRequest("Invalid reservation id: %v", err)
	}
	reservation, err := h.service.GetReservationByID(id)
	if err != nil {
		return err
	}
	return c.JSON(reservation)
}

// HandleGetReservationByFolio retrieves a single reservation by its folio
// tracking code.
func (h *ReservationHandler) HandleGetReservationByFolio(c *fiber.Ctx) error {
	reservation, err := h.service.GetReservationByFolio(c.Params("folio"))
	if err != nil {
		return err
	}
	return c.JSON(reservation)
}

// HandleCreateReservation creates a new reservation. The folio and status
// fields are computed server-side; anything client-supplied is ignored.
func (h *ReservationHandler) HandleCreateReservation(c *fiber.Ctx) error {
	var reservation models.Reservation
	if err := c.BodyParser(&reservation); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(reservation); err != nil {
		return validationError(err)
	}

	created, err := h.service.CreateReservation(&reservation)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateReservation updates an existing reservation.
func (h *ReservationHandler) HandleUpdateReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("reservationId")
	if err != nil {
		return apperrors.BadRequest("Invalid reservation id: %v", err)
	}

	var reservation models.Reservation
	if err := c.BodyParser(&reservation); err != nil {
		return apperrors.BadRequest("Invalid request body: %v", err)
	}
	if err := h.validate.Struct(reservation); err != nil {
		return validationError(err)
	}

	updated, err := h.service.UpdateReservation(id, &reservation)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleDeleteReservation deletes a reservation by its ID.
func (h *ReservationHandler) HandleDeleteReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("reservationId")
	if err != nil {
		return apperrors.BadRequest("Invalid reservation id: %v", err)
	}
	if err := h.service.DeleteReservation(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Reservation deleted successfully"})
}
