package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var ErrPositionNotFound = domain.NewError(domain.ErrNotFound, "position not found")

type Position struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
}

type PositionDAO struct {
	db *gorm.DB
}

func NewPositionDAO(db *gorm.DB) *PositionDAO {
	return &PositionDAO{
		db: db,
	}
}

func (d *PositionDAO) Insert(ctx context.Context, position Position) (Position, error) {
	if err := d.db.WithContext(ctx).Create(&position).Error; err != nil {
		return Position{}, err
	}

	return position, nil
}

func (d *PositionDAO) FindByID(ctx context.Context, id uint) (Position, error) {
	var position Position

	result := d.db.WithContext(ctx).First(&position, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Position{}, ErrPositionNotFound
		}

		return Position{}, result.Error
	}

	return position, nil
}

// List returns every position in creation order.
func (d *PositionDAO) List(ctx context.Context) ([]Position, error) {
	var positions []Position

	if err := d.db.WithContext(ctx).Order("id ASC").Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}
