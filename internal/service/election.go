package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
)

var (
	ErrElectionNotFound      = repository.ErrElectionNotFound
	ErrInvalidElectionStatus = domain.NewError(domain.ErrValidation, "status must be one of pending, active, completed")
	ErrInvalidElectionDates  = domain.NewError(domain.ErrValidation, "end date must be after start date")
	ErrStatusTransition      = domain.NewError(domain.ErrInvalidState, "election status transition not allowed")
	ErrElectionStatusChanged = domain.NewError(domain.ErrConflict, "election status was changed by another request")
)

type ElectionRepository interface {
	Create(ctx context.Context, election domain.Election) (domain.Election, error)
	FindByID(ctx context.Context, id uint) (domain.Election, error)
	List(ctx context.Context) ([]domain.Election, error)
	UpdateStatus(ctx context.Context, id uint, from, to domain.ElectionStatus) (bool, error)
}

type ElectionService struct {
	repo ElectionRepository
}

func NewElectionService(repo ElectionRepository) *ElectionService {
	return &ElectionService{
		repo: repo,
	}
}

func (s *ElectionService) CreateElection(ctx context.Context, election domain.Election) (domain.Election, error) {
	if election.Status == "" {
		election.Status = domain.ElectionPending
	}
	if !election.Status.IsValid() {
		return domain.Election{}, ErrInvalidElectionStatus
	}
	if !election.EndDate.After(election.StartDate) {
		return domain.Election{}, ErrInvalidElectionDates
	}

	created, err := s.repo.Create(ctx, election)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ElectionService) GetElection(ctx context.Context, id uint) (domain.Election, error) {
	election, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return election, nil
}

func (s *ElectionService) ListElections(ctx context.Context) ([]domain.Election, error) {
	elections, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return elections, nil
}

// UpdateElectionStatus moves an election along pending -> active -> completed.
// The write only succeeds if nobody changed the status in between.
func (s *ElectionService) UpdateElectionStatus(ctx context.Context, id uint, status domain.ElectionStatus) (domain.Election, error) {
	if !status.IsValid() {
		return domain.Election{}, ErrInvalidElectionStatus
	}

	election, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !election.Status.CanTransitionTo(status) {
		return domain.Election{}, ErrStatusTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, election.Status, status)
	if err != nil {
		return domain.Election{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}
	if !updated {
		return domain.Election{}, ErrElectionStatusChanged
	}

	election.Status = status

	return election, nil
}
