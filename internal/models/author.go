package models

import "time"

// Author represents an author in the catalog.
type Author struct {
	ID             int       `json:"idAutor" gorm:"column:idAutor;primaryKey;autoIncrement"`
	FirstName      string    `json:"nombre" gorm:"column:nombre" validate:"required"`
	LastName       string    `json:"apellidoPaterno" gorm:"column:apellidoPaterno" validate:"required"`
	MotherLastName string    `json:"apellidoMaterno" gorm:"column:apellidoMaterno"`
	BirthDate      time.Time `json:"fechaNacimiento" gorm:"column:fechaNacimiento"`
	Books          []Book    `json:"books,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the database table name for the Author model.
func (Author) TableName() string {
	return "autores"
}
