package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"csrhub/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string, excludeID uint) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdateLastLogin(userID uint, at time.Time) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves a user by normalized email and checks the
// password. Unknown email and wrong password collapse into the same
// ErrInvalidCredentials so responses cannot be used to enumerate
// accounts.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive() {
		return models.User{}, ErrInactiveAccount
	}

	return user, nil
}

func (service *AuthService) EmailTaken(email string, excludeID uint) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email, excludeID)
}

// Register hashes the password and stores the user. A uniqueness
// pre-check keeps the common case friendly; the unique index on email is
// the backstop for races, so a create failure is reported as ErrEmailTaken.
func (service *AuthService) Register(user *models.User, password string) error {
	taken, err := service.users.ExistsByNormalizedEmail(user.Email, 0)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(passwordHash)

	if err := service.users.Create(user); err != nil {
		return ErrEmailTaken
	}
	return nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// RecordLogin updates the last-login timestamp. Best effort: the caller
// logs a failure but never fails the login over it.
func (service *AuthService) RecordLogin(userID uint, at time.Time) error {
	return service.users.UpdateLastLogin(userID, at)
}
