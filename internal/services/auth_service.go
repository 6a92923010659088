package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/mariveldt/velle/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password is too short")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthUserStore interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserStore
}

func NewAuthService(users AuthUserStore) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(email string, password string, displayName string) (models.User, error) {
	normalized := NormalizeEmail(email)
	if _, err := mail.ParseAddress(normalized); err != nil {
		return models.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return models.User{}, ErrWeakPassword
	}

	taken, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, fmt.Errorf("check email uniqueness: %w", err)
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        normalized,
		PasswordHash: string(passwordHash),
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate never reveals whether the email or the password was wrong.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
