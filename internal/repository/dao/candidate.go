package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var (
	ErrCandidateNotFound = domain.NewError(domain.ErrNotFound, "candidate not found")
	ErrCandidateExists   = domain.NewError(domain.ErrConflict, "already registered for this position")
)

type Candidate struct {
	ID             uint     `gorm:"primaryKey"`
	Name           string   `gorm:"size:255"`
	UserID         uint     `gorm:"not null;uniqueIndex:idx_candidates_user_position"`
	User           User     `gorm:"constraint:OnDelete:CASCADE"`
	PositionID     uint     `gorm:"not null;uniqueIndex:idx_candidates_user_position;index"`
	Position       Position `gorm:"constraint:OnDelete:CASCADE"`
	ProfilePicture *string
	VoteCount      uint `gorm:"not null;default:0"`
	CreatedAt      time.Time
}

type CandidateDAO struct {
	db *gorm.DB
}

func NewCandidateDAO(db *gorm.DB) *CandidateDAO {
	return &CandidateDAO{
		db: db,
	}
}

func (d *CandidateDAO) Insert(ctx context.Context, candidate Candidate) (Candidate, error) {
	candidate.VoteCount = 0

	if err := d.db.WithContext(ctx).Omit("User", "Position").Create(&candidate).Error; err != nil {
		if _, ok := uniqueViolation(err); ok {
			return Candidate{}, ErrCandidateExists
		}

		return Candidate{}, err
	}

	return candidate, nil
}

func (d *CandidateDAO) Exists(ctx context.Context, userID, positionID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Candidate{}).
		Where("user_id = ? AND position_id = ?", userID, positionID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *CandidateDAO) FindByID(ctx context.Context, id uint) (Candidate, error) {
	var candidate Candidate

	result := d.db.WithContext(ctx).Joins("Position").First(&candidate, "candidates.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Candidate{}, ErrCandidateNotFound
		}

		return Candidate{}, result.Error
	}

	return candidate, nil
}

func (d *CandidateDAO) List(ctx context.Context) ([]Candidate, error) {
	var candidates []Candidate

	if err := d.db.WithContext(ctx).Joins("Position").Order("candidates.id ASC").Find(&candidates).Error; err != nil {
		return nil, err
	}

	return candidates, nil
}

func (d *CandidateDAO) ListByPosition(ctx context.Context, positionID uint) ([]Candidate, error) {
	var candidates []Candidate

	result := d.db.WithContext(ctx).Joins("Position").
		Where("candidates.position_id = ?", positionID).
		Order("candidates.id ASC").
		Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	return candidates, nil
}

// IncrementVoteCount bumps the display counter in a single UPDATE so
// concurrent votes never lose an increment.
func (d *CandidateDAO) IncrementVoteCount(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ?", id).
		UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}

	return nil
}
