package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
)

var (
	ErrPositionNotFound    = repository.ErrPositionNotFound
	ErrPositionNameMissing = domain.NewError(domain.ErrValidation, "position name is required")
)

type PositionRepository interface {
	Create(ctx context.Context, position domain.Position) (domain.Position, error)
	FindByID(ctx context.Context, id uint) (domain.Position, error)
	List(ctx context.Context) ([]domain.Position, error)
}

type PositionService struct {
	repo PositionRepository
}

func NewPositionService(repo PositionRepository) *PositionService {
	return &PositionService{
		repo: repo,
	}
}

func (s *PositionService) CreatePosition(ctx context.Context, name string) (domain.Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Position{}, ErrPositionNameMissing
	}

	created, err := s.repo.Create(ctx, domain.Position{Name: name})
	if err != nil {
		return domain.Position{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PositionService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	positions, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return positions, nil
}
