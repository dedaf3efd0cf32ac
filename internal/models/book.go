package models

import "time"

// Book represents a book in the catalog. Every book belongs to exactly one
// author; the reference is validated at create and update time.
type Book struct {
	ID          int       `json:"idLibro" gorm:"column:idLibro;primaryKey;autoIncrement"`
	Title       string    `json:"nombre" gorm:"column:nombre" validate:"required"`
	TotalPages  string    `json:"totalPaginas" gorm:"column:totalPaginas"`
	Publisher   string    `json:"editorial" gorm:"column:editorial"`
	PublishedAt time.Time `json:"fechaPublicacion" gorm:"column:fechaPublicacion"`
	Genre       string    `json:"genero" gorm:"column:genero"`
	Description string    `json:"descripcion" gorm:"column:descripcion"`
	AuthorID    int       `json:"idAutor" gorm:"column:idAutor" validate:"required"`
	Author      *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the database table name for the Book model.
func (Book) TableName() string {
	return "libros"
}
