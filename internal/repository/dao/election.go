package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var ErrElectionNotFound = domain.NewError(domain.ErrNotFound, "election not found")

type Election struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Status    string    `gorm:"size:20;not null;default:pending;index"`
	CreatedAt time.Time
}

type ElectionDAO struct {
	db *gorm.DB
}

func NewElectionDAO(db *gorm.DB) *ElectionDAO {
	return &ElectionDAO{
		db: db,
	}
}

func (d *ElectionDAO) Insert(ctx context.Context, election Election) (Election, error) {
	if err := d.db.WithContext(ctx).Create(&election).Error; err != nil {
		return Election{}, err
	}

	return election, nil
}

func (d *ElectionDAO) FindByID(ctx context.Context, id uint) (Election, error) {
	var election Election

	result := d.db.WithContext(ctx).First(&election, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Election{}, ErrElectionNotFound
		}

		return Election{}, result.Error
	}

	return election, nil
}

func (d *ElectionDAO) List(ctx context.Context) ([]Election, error) {
	var elections []Election

	if err := d.db.WithContext(ctx).Order("id ASC").Find(&elections).Error; err != nil {
		return nil, err
	}

	return elections, nil
}

// UpdateStatus moves the election from one status to another. It returns
// false when the election was not in the expected status anymore.
func (d *ElectionDAO) UpdateStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	result := d.db.WithContext(ctx).Model(&Election{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
