package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

func TestStudentDAO_InsertBatch(t *testing.T) {
	gormDB := newTestDB(t)
	students := dao.NewStudentDAO(gormDB)
	ctx := context.Background()

	roster := []dao.Student{
		{RegNo: "2020/001", WebMail: "ada@uni.edu"},
		{RegNo: "2020/002", WebMail: "bob@uni.edu"},
		{RegNo: "2020/003", WebMail: "cy@uni.edu"},
	}

	inserted, err := students.InsertBatch(ctx, roster, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)

	inserted, err = students.InsertBatch(ctx, append(roster, dao.Student{RegNo: "2020/004", WebMail: "di@uni.edu"}), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	inserted, err = students.InsertBatch(ctx, nil, 2)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestStudentDAO_FindByRegNoAndWebMail(t *testing.T) {
	gormDB := newTestDB(t)
	students := dao.NewStudentDAO(gormDB)
	ctx := context.Background()

	_, err := students.InsertBatch(ctx, []dao.Student{
		{RegNo: "2020/001", WebMail: "ada@uni.edu"},
		{RegNo: "2020/002", WebMail: "bob@uni.edu"},
	}, 10)
	require.NoError(t, err)

	found, err := students.FindByRegNoAndWebMail(ctx, "2020/001", "ada@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, "2020/001", found.RegNo)

	// Each value exists, but not on the same row.
	_, err = students.FindByRegNoAndWebMail(ctx, "2020/001", "bob@uni.edu")
	assert.ErrorIs(t, err, dao.ErrStudentNotFound)
}
