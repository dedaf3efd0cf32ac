package models

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// Only the initial "Activa" state is assigned by the server; later
// transitions happen through explicit update calls.
type ReservationStatus string

const (
	StatusActive  ReservationStatus = "Activa"
	StatusClosed  ReservationStatus = "Cerrada"
	StatusOverdue ReservationStatus = "Vencida"
)

// Reservation represents a book reservation made by a user. Folio and status
// are computed by the server at creation time and never client-supplied; the
// folio is immutable afterwards.
type Reservation struct {
	ID         int               `json:"idReservacion" gorm:"column:idReservacion;primaryKey;autoIncrement"`
	BookID     int               `json:"idLibro" gorm:"column:idLibro" validate:"required"`
	UserID     int               `json:"idUsuario" gorm:"column:idUsuario" validate:"required"`
	ReservedAt time.Time         `json:"fechaReservacion" gorm:"column:fechaReservacion"`
	DueDate    time.Time         `json:"fechaDevolucion" gorm:"column:fechaDevolucion" validate:"required"`
	Folio      string            `json:"folioReservacion" gorm:"column:folioReservacion"`
	Status     ReservationStatus `json:"estatusReservacion" gorm:"column:estatusReservacion"`
	Book       *Book             `json:"book,omitempty" gorm:"foreignKey:BookID"`
	User       *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the Reservation model.
func (Reservation) TableName() string {
	return "reservaciones"
}
