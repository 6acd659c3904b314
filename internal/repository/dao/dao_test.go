package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/db"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return gormDB
}

type fixture struct {
	election  dao.Election
	position  dao.Position
	voter     dao.User
	candidate dao.Candidate
}

func seed(t *testing.T, gormDB *gorm.DB, status string) fixture {
	t.Helper()
	ctx := context.Background()

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	election, err := dao.NewElectionDAO(gormDB).Insert(ctx, dao.Election{
		Name:      "SRC 2024",
		StartDate: start,
		EndDate:   start.Add(10 * time.Hour),
		Status:    status,
	})
	require.NoError(t, err)

	position, err := dao.NewPositionDAO(gormDB).Insert(ctx, dao.Position{Name: "President"})
	require.NoError(t, err)

	voter, _, err := dao.NewUserDAO(gormDB).InsertWithProfile(ctx,
		dao.User{Username: "voter", Email: "voter@example.com", Password: "hash"},
		dao.UserProfile{RegistrationNumber: "2020/100", WebMail: "voter@uni.edu"},
	)
	require.NoError(t, err)

	runner, _, err := dao.NewUserDAO(gormDB).InsertWithProfile(ctx,
		dao.User{Username: "runner", Email: "runner@example.com", Password: "hash"},
		dao.UserProfile{RegistrationNumber: "2020/101", WebMail: "runner@uni.edu"},
	)
	require.NoError(t, err)

	candidate, err := dao.NewCandidateDAO(gormDB).Insert(ctx, dao.Candidate{
		Name:       "Runner",
		UserID:     runner.ID,
		PositionID: position.ID,
	})
	require.NoError(t, err)

	return fixture{
		election:  election,
		position:  position,
		voter:     voter,
		candidate: candidate,
	}
}
