package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUsernameExists  = dao.ErrUsernameExists
	ErrUserExists      = dao.ErrUserExists
	ErrProfileExists   = dao.ErrProfileExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	InsertWithProfile(ctx context.Context, user dao.User, profile dao.UserProfile) (dao.User, dao.UserProfile, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	ProfileExists(ctx context.Context, registrationNumber, webMail string) (bool, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) CreateAccount(ctx context.Context, account domain.Account) (domain.User, domain.UserProfile, error) {
	createdUser, createdProfile, err := r.dao.InsertWithProfile(ctx,
		dao.User{
			Username:  account.User.Username,
			Email:     account.User.Email,
			Password:  account.User.Password,
			FirstName: account.User.FirstName,
			LastName:  account.User.LastName,
		},
		dao.UserProfile{
			RegistrationNumber: account.RegistrationNumber,
			WebMail:            account.WebMail,
		},
	)
	if err != nil {
		return domain.User{}, domain.UserProfile{}, fmt.Errorf("r.dao.InsertWithProfile -> %w", err)
	}

	return r.daoToDomain(createdUser), domain.UserProfile{
		ID:                 createdProfile.ID,
		UserID:             createdProfile.UserID,
		RegistrationNumber: createdProfile.RegistrationNumber,
		WebMail:            createdProfile.WebMail,
	}, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) ProfileExists(ctx context.Context, registrationNumber, webMail string) (bool, error) {
	exists, err := r.dao.ProfileExists(ctx, registrationNumber, webMail)
	if err != nil {
		return false, fmt.Errorf("r.dao.ProfileExists -> %w", err)
	}

	return exists, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
