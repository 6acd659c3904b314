package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var ErrStudentNotFound = domain.NewError(domain.ErrNotFound, "student not found")

type Student struct {
	ID      uint   `gorm:"primaryKey"`
	RegNo   string `gorm:"unique;not null"`
	WebMail string `gorm:"unique;not null"`
}

type StudentDAO struct {
	db *gorm.DB
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{
		db: db,
	}
}

// FindByRegNoAndWebMail matches a single roster row on both columns.
func (d *StudentDAO) FindByRegNoAndWebMail(ctx context.Context, regNo, webMail string) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).
		Where("reg_no = ? AND web_mail = ?", regNo, webMail).
		First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

// InsertBatch inserts roster rows, skipping rows whose registration number or
// web mail is already present. It returns the number of rows inserted.
func (d *StudentDAO) InsertBatch(ctx context.Context, students []Student, batchSize int) (int64, error) {
	if len(students) == 0 {
		return 0, nil
	}

	result := d.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&students, batchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
