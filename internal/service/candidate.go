package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
)

var ErrCandidateExists = repository.ErrCandidateExists

type CandidateRepository interface {
	Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Exists(ctx context.Context, userID, positionID uint) (bool, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	ListByPosition(ctx context.Context, positionID uint) ([]domain.Candidate, error)
}

type CandidateService struct {
	repo      CandidateRepository
	positions PositionRepository
	users     UserRepository
}

func NewCandidateService(repo CandidateRepository, positions PositionRepository, users UserRepository) *CandidateService {
	return &CandidateService{
		repo:      repo,
		positions: positions,
		users:     users,
	}
}

// RegisterCandidate makes the user a candidate for the position. A user may
// stand for several positions but only once for each.
func (s *CandidateService) RegisterCandidate(ctx context.Context, userID, positionID uint, name string, profilePicture *string) (domain.Candidate, error) {
	position, err := s.positions.FindByID(ctx, positionID)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.positions.FindByID -> %w", err)
	}

	exists, err := s.repo.Exists(ctx, userID, positionID)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.repo.Exists -> %w", err)
	}
	if exists {
		return domain.Candidate{}, ErrCandidateExists
	}

	name = strings.TrimSpace(name)
	if name == "" {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return domain.Candidate{}, fmt.Errorf("s.users.FindByID -> %w", err)
		}
		name = user.FullName()
	}

	created, err := s.repo.Create(ctx, domain.Candidate{
		UserID:         userID,
		Name:           name,
		PositionID:     position.ID,
		PositionName:   position.Name,
		ProfilePicture: profilePicture,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCandidateExists) {
			return domain.Candidate{}, ErrCandidateExists
		}

		return domain.Candidate{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CandidateService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return candidates, nil
}

func (s *CandidateService) ListCandidatesByPosition(ctx context.Context, positionID uint) ([]domain.Candidate, error) {
	candidates, err := s.repo.ListByPosition(ctx, positionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByPosition -> %w", err)
	}

	return candidates, nil
}
