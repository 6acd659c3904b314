package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
)

var (
	ErrUserEmailExists     = repository.ErrUserEmailExists
	ErrUsernameExists      = repository.ErrUsernameExists
	ErrProfileExists       = repository.ErrProfileExists
	ErrInvalidRegistration = domain.NewError(domain.ErrValidation, "invalid registration number or web mail")
	ErrInvalidCredentials  = domain.NewError(domain.ErrAuthenticationFailed, "invalid username or password")
)

type AuthUserRepository interface {
	CreateAccount(ctx context.Context, account domain.Account) (domain.User, domain.UserProfile, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ProfileExists(ctx context.Context, registrationNumber, webMail string) (bool, error)
}

type StudentRepository interface {
	FindByRegNoAndWebMail(ctx context.Context, regNo, webMail string) (domain.Student, error)
}

type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthService struct {
	repo     AuthUserRepository
	students StudentRepository
	denylist TokenDenylist
}

func NewAuthService(repo AuthUserRepository, students StudentRepository, denylist TokenDenylist) *AuthService {
	return &AuthService{
		repo:     repo,
		students: students,
		denylist: denylist,
	}
}

// CreateAccount registers a user verified against the student roster. The
// user and its profile are created together or not at all.
func (s *AuthService) CreateAccount(ctx context.Context, account domain.Account) (domain.User, error) {
	_, err := s.students.FindByRegNoAndWebMail(ctx, account.RegistrationNumber, account.WebMail)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domain.User{}, ErrInvalidRegistration
		}

		return domain.User{}, fmt.Errorf("s.students.FindByRegNoAndWebMail -> %w", err)
	}

	if err = s.checkUsernameExists(ctx, account.User.Username); err != nil {
		return domain.User{}, err
	}

	if err = s.checkEmailExists(ctx, account.User.Email); err != nil {
		return domain.User{}, err
	}

	registered, err := s.repo.ProfileExists(ctx, account.RegistrationNumber, account.WebMail)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.ProfileExists -> %w", err)
	}
	if registered {
		return domain.User{}, ErrProfileExists
	}

	hashedPassword, err := hashPassword(account.User.Password)
	if err != nil {
		return domain.User{}, err
	}
	account.User.Password = hashedPassword

	created, _, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.CreateAccount -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Logout revokes a token until it expires.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := s.denylist.Revoke(ctx, tokenID, expiresAt); err != nil {
		return fmt.Errorf("s.denylist.Revoke -> %w", err)
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	return string(hash), nil
}

func (s *AuthService) checkUsernameExists(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}
	return nil
}

func (s *AuthService) checkEmailExists(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserEmailExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}
	return nil
}
