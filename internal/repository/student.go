package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var ErrStudentNotFound = dao.ErrStudentNotFound

const studentBatchSize = 500

type StudentDAO interface {
	FindByRegNoAndWebMail(ctx context.Context, regNo, webMail string) (dao.Student, error)
	InsertBatch(ctx context.Context, students []dao.Student, batchSize int) (int64, error)
}

type StudentRepository struct {
	dao StudentDAO
}

func NewStudentRepository(dao StudentDAO) *StudentRepository {
	return &StudentRepository{
		dao: dao,
	}
}

func (r *StudentRepository) FindByRegNoAndWebMail(ctx context.Context, regNo, webMail string) (domain.Student, error) {
	found, err := r.dao.FindByRegNoAndWebMail(ctx, regNo, webMail)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.dao.FindByRegNoAndWebMail -> %w", err)
	}

	return domain.Student{
		ID:      found.ID,
		RegNo:   found.RegNo,
		WebMail: found.WebMail,
	}, nil
}

func (r *StudentRepository) CreateMany(ctx context.Context, students []domain.Student) (int64, error) {
	rows := make([]dao.Student, len(students))
	for i, s := range students {
		rows[i] = dao.Student{
			RegNo:   s.RegNo,
			WebMail: s.WebMail,
		}
	}

	inserted, err := r.dao.InsertBatch(ctx, rows, studentBatchSize)
	if err != nil {
		return 0, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return inserted, nil
}
