package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var (
	ErrCandidateNotFound = dao.ErrCandidateNotFound
	ErrCandidateExists   = dao.ErrCandidateExists
)

type CandidateDAO interface {
	Insert(ctx context.Context, candidate dao.Candidate) (dao.Candidate, error)
	Exists(ctx context.Context, userID, positionID uint) (bool, error)
	FindByID(ctx context.Context, id uint) (dao.Candidate, error)
	List(ctx context.Context) ([]dao.Candidate, error)
	ListByPosition(ctx context.Context, positionID uint) ([]dao.Candidate, error)
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(dao CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: dao,
	}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	created, err := r.dao.Insert(ctx, dao.Candidate{
		Name:           candidate.Name,
		UserID:         candidate.UserID,
		PositionID:     candidate.PositionID,
		ProfilePicture: candidate.ProfilePicture,
	})
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	result := candidateDaoToDomain(created)
	result.PositionName = candidate.PositionName

	return result, nil
}

func (r *CandidateRepository) Exists(ctx context.Context, userID, positionID uint) (bool, error) {
	exists, err := r.dao.Exists(ctx, userID, positionID)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return exists, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uint) (domain.Candidate, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return candidateDaoToDomain(found), nil
}

func (r *CandidateRepository) List(ctx context.Context) ([]domain.Candidate, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return candidatesDaoToDomain(found), nil
}

func (r *CandidateRepository) ListByPosition(ctx context.Context, positionID uint) ([]domain.Candidate, error) {
	found, err := r.dao.ListByPosition(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByPosition -> %w", err)
	}

	return candidatesDaoToDomain(found), nil
}

func candidatesDaoToDomain(candidates []dao.Candidate) []domain.Candidate {
	result := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		result[i] = candidateDaoToDomain(c)
	}
	return result
}

func candidateDaoToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		PositionID:     c.PositionID,
		PositionName:   c.Position.Name,
		ProfilePicture: c.ProfilePicture,
		VoteCount:      c.VoteCount,
		CreatedAt:      c.CreatedAt,
	}
}
