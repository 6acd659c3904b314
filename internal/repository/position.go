package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var ErrPositionNotFound = dao.ErrPositionNotFound

type PositionDAO interface {
	Insert(ctx context.Context, position dao.Position) (dao.Position, error)
	FindByID(ctx context.Context, id uint) (dao.Position, error)
	List(ctx context.Context) ([]dao.Position, error)
}

type PositionRepository struct {
	dao PositionDAO
}

func NewPositionRepository(dao PositionDAO) *PositionRepository {
	return &PositionRepository{
		dao: dao,
	}
}

func (r *PositionRepository) Create(ctx context.Context, position domain.Position) (domain.Position, error) {
	created, err := r.dao.Insert(ctx, dao.Position{Name: position.Name})
	if err != nil {
		return domain.Position{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PositionRepository) FindByID(ctx context.Context, id uint) (domain.Position, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Position{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PositionRepository) List(ctx context.Context) ([]domain.Position, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	positions := make([]domain.Position, len(found))
	for i, p := range found {
		positions[i] = r.daoToDomain(p)
	}

	return positions, nil
}

func (r *PositionRepository) daoToDomain(p dao.Position) domain.Position {
	return domain.Position{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}
