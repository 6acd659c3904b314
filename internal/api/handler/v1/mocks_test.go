package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/elections-api/internal/api/middleware"
	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/pkg/jwthelper"
)

const testUserID uint = 7

// authenticated stands in for the JWT middleware.
func authenticated(claims *jwthelper.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyUserID, testUserID)
		if claims != nil {
			ctx.Set(middleware.ContextKeyClaims, claims)
		}
		ctx.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) CreateAccount(ctx context.Context, account domain.Account) (domain.User, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockVoteService struct{ mock.Mock }

func (m *mockVoteService) CastVote(ctx context.Context, electionID, positionID, candidateID, voterID uint) (domain.Vote, error) {
	args := m.Called(ctx, electionID, positionID, candidateID, voterID)
	return args.Get(0).(domain.Vote), args.Error(1)
}

func (m *mockVoteService) ListVoterHistory(ctx context.Context, voterID uint) ([]domain.VoteHistoryEntry, error) {
	args := m.Called(ctx, voterID)
	history, _ := args.Get(0).([]domain.VoteHistoryEntry)
	return history, args.Error(1)
}

type mockCandidateService struct{ mock.Mock }

func (m *mockCandidateService) RegisterCandidate(ctx context.Context, userID, positionID uint, name string, profilePicture *string) (domain.Candidate, error) {
	args := m.Called(ctx, userID, positionID, name, profilePicture)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *mockCandidateService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	candidates, _ := args.Get(0).([]domain.Candidate)
	return candidates, args.Error(1)
}

func (m *mockCandidateService) ListCandidatesByPosition(ctx context.Context, positionID uint) ([]domain.Candidate, error) {
	args := m.Called(ctx, positionID)
	candidates, _ := args.Get(0).([]domain.Candidate)
	return candidates, args.Error(1)
}

type mockElectionService struct{ mock.Mock }

func (m *mockElectionService) CreateElection(ctx context.Context, election domain.Election) (domain.Election, error) {
	args := m.Called(ctx, election)
	return args.Get(0).(domain.Election), args.Error(1)
}

func (m *mockElectionService) GetElection(ctx context.Context, id uint) (domain.Election, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Election), args.Error(1)
}

func (m *mockElectionService) ListElections(ctx context.Context) ([]domain.Election, error) {
	args := m.Called(ctx)
	elections, _ := args.Get(0).([]domain.Election)
	return elections, args.Error(1)
}

func (m *mockElectionService) UpdateElectionStatus(ctx context.Context, id uint, status domain.ElectionStatus) (domain.Election, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Election), args.Error(1)
}

type mockResultService struct{ mock.Mock }

func (m *mockResultService) GetResults(ctx context.Context, electionID uint) ([]domain.PositionResult, error) {
	args := m.Called(ctx, electionID)
	results, _ := args.Get(0).([]domain.PositionResult)
	return results, args.Error(1)
}

type mockPositionService struct{ mock.Mock }

func (m *mockPositionService) CreatePosition(ctx context.Context, name string) (domain.Position, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Position), args.Error(1)
}

func (m *mockPositionService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	args := m.Called(ctx)
	positions, _ := args.Get(0).([]domain.Position)
	return positions, args.Error(1)
}
