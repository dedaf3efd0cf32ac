package models

import "time"

// Role gates endpoint access. Values are stored verbatim in the perfil column.
type Role string

const (
	RoleAdmin Role = "Administrador"
	RoleUser  Role = "Usuario"
)

// DefaultPassword is the seeded password assigned to admin-created accounts.
// Users are expected to replace it through auth/changePassword on first use.
const DefaultPassword = "Library1234"

// User represents a library user account.
type User struct {
	ID             int       `json:"idUsuario" gorm:"column:idUsuario;primaryKey;autoIncrement"`
	FirstName      string    `json:"nombre" gorm:"column:nombre" validate:"required"`
	LastName       string    `json:"apellidoPaterno" gorm:"column:apellidoPaterno" validate:"required"`
	MotherLastName string    `json:"apellidoMaterno" gorm:"column:apellidoMaterno"`
	Age            string    `json:"edad" gorm:"column:edad"`
	Email          string    `json:"correoElectronico" gorm:"column:correoElectronico" validate:"required,email"`
	Role           Role      `json:"perfil" gorm:"column:perfil"`
	Active         bool      `json:"activo" gorm:"column:activo"`
	CreatedAt      time.Time `json:"fechaAlta" gorm:"column:fechaAlta"`
	Nickname       string    `json:"nombreUsuario" gorm:"column:nombreUsuario" validate:"required"`
	Password       string    `json:"-" gorm:"column:contrasena"` // bcrypt hash, never serialized
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "usuarios"
}
