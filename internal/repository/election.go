package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var ErrElectionNotFound = dao.ErrElectionNotFound

type ElectionDAO interface {
	Insert(ctx context.Context, election dao.Election) (dao.Election, error)
	FindByID(ctx context.Context, id uint) (dao.Election, error)
	List(ctx context.Context) ([]dao.Election, error)
	UpdateStatus(ctx context.Context, id uint, from, to string) (bool, error)
}

type ElectionRepository struct {
	dao ElectionDAO
}

func NewElectionRepository(dao ElectionDAO) *ElectionRepository {
	return &ElectionRepository{
		dao: dao,
	}
}

func (r *ElectionRepository) Create(ctx context.Context, election domain.Election) (domain.Election, error) {
	created, err := r.dao.Insert(ctx, electionDomainToDao(election))
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return electionDaoToDomain(created), nil
}

func (r *ElectionRepository) FindByID(ctx context.Context, id uint) (domain.Election, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return electionDaoToDomain(found), nil
}

func (r *ElectionRepository) List(ctx context.Context) ([]domain.Election, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	elections := make([]domain.Election, len(found))
	for i, e := range found {
		elections[i] = electionDaoToDomain(e)
	}

	return elections, nil
}

func (r *ElectionRepository) UpdateStatus(ctx context.Context, id uint, from, to domain.ElectionStatus) (bool, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(from), string(to))
	if err != nil {
		return false, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return updated, nil
}

func electionDomainToDao(e domain.Election) dao.Election {
	return dao.Election{
		ID:        e.ID,
		Name:      e.Name,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func electionDaoToDomain(e dao.Election) domain.Election {
	return domain.Election{
		ID:        e.ID,
		Name:      e.Name,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Status:    domain.ElectionStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
