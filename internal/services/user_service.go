package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

type UserService interface {
	LoginCustomer(ctx context.Context, name, email string) (*models.User, error)
	LoginAdmin(ctx context.Context, username, password string) (*models.User, error)
	Current(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type userService struct {
	userRepo      repository.UserRepository
	adminUsername string
	adminHash     []byte
}

// NewUserService hashes the configured admin password once so the plaintext
// is not kept around for comparisons.
func NewUserService(userRepo repository.UserRepository, adminUsername, adminPassword string) (UserService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &userService{
		userRepo:      userRepo,
		adminUsername: adminUsername,
		adminHash:     hash,
	}, nil
}

func (s *userService) LoginCustomer(ctx context.Context, name, email string) (*models.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	user := &models.User{Name: name, Email: email, Role: string(models.RoleCustomer)}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) LoginAdmin(ctx context.Context, username, password string) (*models.User, error) {
	if username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := &models.User{Name: username, Role: string(models.RoleAdmin)}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Current returns the logged-in user, or nil for a guest.
func (s *userService) Current(ctx context.Context) (*models.User, error) {
	return s.userRepo.Get(ctx)
}

func (s *userService) Logout(ctx context.Context) error {
	return s.userRepo.Delete(ctx)
}
