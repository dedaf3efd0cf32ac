package services_test

import (
	"github.com/stretchr/testify/mock"

	"biblioteca/internal/models"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id int) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(email string, excludeID int) (bool, error) {
	args := m.Called(email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(email, hashedPassword string) error {
	args := m.Called(email, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAuthorRepository is a mock implementation of repositories.AuthorRepository.
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) GetAll() ([]models.Author, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetByID(id int) (*models.Author, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorRepository) Create(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *MockAuthorRepository) Update(author *models.Author) error {
	args := m.Called(author)
	return args.Error(0)
}

func (m *MockAuthorRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBookRepository is a mock implementation of repositories.BookRepository.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetAll() ([]models.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetByID(id int) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) SearchByTitle(title string) ([]models.Book, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) SearchByGenre(genre string) ([]models.Book, error) {
	args := m.Called(genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Update(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockReservationRepository is a mock implementation of
// repositories.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetAll() ([]models.Reservation, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(id int) (*models.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByFolio(folio string) (*models.Reservation, error) {
	args := m.Called(folio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Create(reservation *models.Reservation) error {
	args := m.Called(reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Update(reservation *models.Reservation) error {
	args := m.Called(reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
