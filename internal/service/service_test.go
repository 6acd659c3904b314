package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/db"
	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
	"github.com/vietanh2810/elections-api/internal/repository/cache"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
	"github.com/vietanh2810/elections-api/internal/service"
)

type testEnv struct {
	db *gorm.DB

	users      *repository.UserRepository
	students   *repository.StudentRepository
	positions  *repository.PositionRepository
	elections  *repository.ElectionRepository
	candidates *repository.CandidateRepository
	votes      *repository.VoteRepository
	denylist   *cache.MemoryTokenDenylist
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gormDB, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	denylist := cache.NewMemoryTokenDenylist()
	t.Cleanup(denylist.Close)

	return &testEnv{
		db:         gormDB,
		users:      repository.NewUserRepository(dao.NewUserDAO(gormDB)),
		students:   repository.NewStudentRepository(dao.NewStudentDAO(gormDB)),
		positions:  repository.NewPositionRepository(dao.NewPositionDAO(gormDB)),
		elections:  repository.NewElectionRepository(dao.NewElectionDAO(gormDB)),
		candidates: repository.NewCandidateRepository(dao.NewCandidateDAO(gormDB)),
		votes:      repository.NewVoteRepository(dao.NewVoteDAO(gormDB)),
		denylist:   denylist,
	}
}

func (e *testEnv) authService() *service.AuthService {
	return service.NewAuthService(e.users, e.students, e.denylist)
}

func (e *testEnv) voteService() *service.VoteService {
	return service.NewVoteService(e.votes)
}

func (e *testEnv) candidateService() *service.CandidateService {
	return service.NewCandidateService(e.candidates, e.positions, e.users)
}

func (e *testEnv) resultService(includeZeroVotes bool) *service.ResultService {
	return service.NewResultService(e.elections, e.positions, e.candidates, e.votes, includeZeroVotes)
}

func (e *testEnv) createUser(t *testing.T, username string) domain.User {
	t.Helper()

	user, _, err := e.users.CreateAccount(context.Background(), domain.Account{
		User: domain.User{
			Username: username,
			Email:    username + "@example.com",
			Password: "not-a-real-hash",
		},
		RegistrationNumber: "reg-" + username,
		WebMail:            username + "@uni.edu",
	})
	require.NoError(t, err)

	return user
}

func (e *testEnv) createElection(t *testing.T, status domain.ElectionStatus) domain.Election {
	t.Helper()

	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	election, err := e.elections.Create(context.Background(), domain.Election{
		Name:      "SRC 2024",
		StartDate: start,
		EndDate:   start.Add(10 * time.Hour),
		Status:    status,
	})
	require.NoError(t, err)

	return election
}

func (e *testEnv) createPosition(t *testing.T, name string) domain.Position {
	t.Helper()

	position, err := e.positions.Create(context.Background(), domain.Position{Name: name})
	require.NoError(t, err)

	return position
}

func (e *testEnv) createCandidate(t *testing.T, name string, position domain.Position) domain.Candidate {
	t.Helper()

	user := e.createUser(t, "user-"+name)
	candidate, err := e.candidateService().RegisterCandidate(context.Background(), user.ID, position.ID, name, nil)
	require.NoError(t, err)

	return candidate
}

func (e *testEnv) voteCount(t *testing.T, candidateID uint) uint {
	t.Helper()

	candidate, err := e.candidates.FindByID(context.Background(), candidateID)
	require.NoError(t, err)

	return candidate.VoteCount
}
