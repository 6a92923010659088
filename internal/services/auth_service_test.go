package services

import (
	"errors"
	"testing"

	"github.com/mariveldt/velle/internal/models"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users  []models.User
	nextID uint
}

func (store *fakeUserStore) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range store.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (store *fakeUserStore) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (store *fakeUserStore) FindByID(userID uint) (models.User, error) {
	for _, user := range store.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (store *fakeUserStore) Create(user *models.User) error {
	store.nextID++
	user.ID = store.nextID
	store.users = append(store.users, *user)
	return nil
}

func TestRegisterNormalizesEmail(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&fakeUserStore{})
	user, err := service.Register("  Luna@Example.COM ", "correct horse", "Luna")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "luna@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "correct horse" {
		t.Fatal("password must not be stored in the clear")
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&fakeUserStore{})

	if _, err := service.Register("not-an-email", "correct horse", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := service.Register("luna@example.com", "short", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}

	if _, err := service.Register("luna@example.com", "correct horse", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := service.Register("LUNA@example.com", "correct horse", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for a case-variant duplicate, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	service := NewAuthService(&fakeUserStore{})
	registered, err := service.Register("luna@example.com", "correct horse", "Luna")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate(" Luna@Example.com ", "correct horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user %d, got %d", registered.ID, user.ID)
	}

	if _, err := service.Authenticate("luna@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// An unknown email yields the same error as a wrong password.
	if _, err := service.Authenticate("ghost@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
