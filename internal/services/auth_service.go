package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"biblioteca/internal/apperrors"
	"biblioteca/internal/models"
	"biblioteca/internal/repositories"
)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 12 * time.Hour,
	}
}

// Login authenticates a user by email and returns a signed JWT carrying the
// username and role.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFound("Specified email %s does not exist, verify your information", email)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Unauthorized("Incorrect password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Nickname,
		"perfil":   string(user.Role),
		"exp":      time.Now().Add(s.tokenDuration).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// Register creates a new self-service account. The role is forced to the
// default "Usuario" and the account is activated regardless of input.
func (s *AuthService) Register(user *models.User, plainPassword string) (*models.User, error) {
	taken, err := s.userRepo.EmailTaken(user.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.BadRequest("Specified email %s already exists, use another email or login to your account", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashedPassword)
	user.Role = models.RoleUser
	user.Active = true
	user.CreatedAt = time.Now()

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeDefaultPassword replaces the seeded default password with a personal
// one. The change is permitted only while the stored hash still matches the
// default password; any other state yields a conflict.
func (s *AuthService) ChangeDefaultPassword(email, newPassword string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(models.DefaultPassword)); err != nil {
		return apperrors.Conflict("User does not have a default password to change")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(email, string(hashedPassword)); err != nil {
		return err
	}

	logrus.WithField("email", email).Info("default password replaced")
	return nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token: %v", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.Unauthorized("invalid token")
}
