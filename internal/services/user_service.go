package services

import (
	"errors"
	"fmt"

	"github.com/lucasmonteiro/occurrence-api/internal/constants"
	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"github.com/lucasmonteiro/occurrence-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid matricula or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToSeedUser     = errors.New("failed to seed default user")
)

// DefaultOwnerResolver resolves the owner for occurrences submitted without
// one. It is injected into OccurrenceService so tests can substitute it.
type DefaultOwnerResolver interface {
	// ResolveDefaultUserID returns the fallback owner's ID, or "" when the
	// directory has not been seeded yet.
	ResolveDefaultUserID() (string, error)
}

// UserService handles user directory business logic.
type UserService struct {
	userRepo repository.UserRepository
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log,
	}
}

// SeedDefaultUser ensures the well-known fallback account exists. Calling it
// again returns the existing record untouched.
func (s *UserService) SeedDefaultUser() (*models.User, error) {
	user, err := s.userRepo.FindByMatricula(constants.DefaultUserMatricula)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up default user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(constants.DefaultUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user = &models.User{
		Name:         constants.DefaultUserName,
		Role:         constants.DefaultUserRole,
		Matricula:    constants.DefaultUserMatricula,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		s.log.Error().Err(err).Msg("default user insert failed")
		return nil, ErrFailedToSeedUser
	}

	s.log.Info().Str("user_id", user.ID).Msg("default user seeded")
	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Matricula string
	Password  string
}

// Authenticate verifies credentials and returns the authenticated user. A
// missing user and a wrong password both yield ErrInvalidCredentials.
func (s *UserService) Authenticate(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByMatricula(input.Matricula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetProfile retrieves a user by registration identifier.
func (s *UserService) GetProfile(matricula string) (*models.User, error) {
	user, err := s.userRepo.FindByMatricula(matricula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ResolveDefaultUserID implements DefaultOwnerResolver against the seeded
// account's matricula.
func (s *UserService) ResolveDefaultUserID() (string, error) {
	user, err := s.userRepo.FindByMatricula(constants.DefaultUserMatricula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve default user: %w", err)
	}
	return user.ID, nil
}
