package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var (
	ErrUserEmailExists = domain.NewError(domain.ErrConflict, "a user with this email already exists")
	ErrUsernameExists  = domain.NewError(domain.ErrConflict, "a user with this username already exists")
	ErrUserExists      = domain.NewError(domain.ErrConflict, "user already exists")
	ErrProfileExists   = domain.NewError(domain.ErrConflict, "an account is already registered for this student")
	ErrUserNotFound    = domain.NewError(domain.ErrNotFound, "user not found")
)

const (
	constraintUsersEmail    = "uni_users_email"
	constraintUsersUsername = "uni_users_username"
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Username string `gorm:"unique;not null"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	FirstName string
	LastName  string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserProfile struct {
	ID                 uint   `gorm:"primaryKey"`
	UserID             uint   `gorm:"not null;index"`
	User               User   `gorm:"constraint:OnDelete:CASCADE"`
	RegistrationNumber string `gorm:"size:25;unique;not null"`
	WebMail            string `gorm:"unique;not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

// InsertWithProfile creates the user and its profile in one transaction.
func (d *UserDAO) InsertWithProfile(ctx context.Context, user User, profile UserProfile) (User, UserProfile, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if constraint, ok := uniqueViolation(err); ok {
				switch constraint {
				case constraintUsersEmail:
					return ErrUserEmailExists
				case constraintUsersUsername:
					return ErrUsernameExists
				default:
					return ErrUserExists
				}
			}

			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			if _, ok := uniqueViolation(err); ok {
				return ErrProfileExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return User{}, UserProfile{}, err
	}

	profile.User = User{}

	return user, profile, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// ProfileExists reports whether the registration number or the web mail is
// already bound to an account.
func (d *UserDAO) ProfileExists(ctx context.Context, registrationNumber, webMail string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&UserProfile{}).
		Where("registration_number = ? OR web_mail = ?", registrationNumber, webMail).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("count user_profiles -> %w", result.Error)
	}

	return count > 0, nil
}
