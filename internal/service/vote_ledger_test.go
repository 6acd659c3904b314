package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
	"github.com/vietanh2810/elections-api/internal/service"
)

type mockVoteLedger struct{ mock.Mock }

func (m *mockVoteLedger) FindElection(ctx context.Context, id uint) (domain.Election, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Election), args.Error(1)
}

func (m *mockVoteLedger) HasVoted(ctx context.Context, electionID, voterID, positionID uint) (bool, error) {
	args := m.Called(ctx, electionID, voterID, positionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteLedger) FindCandidate(ctx context.Context, id uint) (domain.Candidate, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Candidate), args.Error(1)
}

func (m *mockVoteLedger) InsertVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	args := m.Called(ctx, vote)
	return args.Get(0).(domain.Vote), args.Error(1)
}

func (m *mockVoteLedger) IncrementVoteCount(ctx context.Context, candidateID uint) error {
	args := m.Called(ctx, candidateID)
	return args.Error(0)
}

// ledgerVoteRepository runs every transaction against one ledger.
type ledgerVoteRepository struct {
	ledger repository.VoteLedger
}

func (r *ledgerVoteRepository) Transaction(_ context.Context, fn func(ledger repository.VoteLedger) error) error {
	return fn(r.ledger)
}

func (r *ledgerVoteRepository) ListByVoter(context.Context, uint) ([]domain.VoteHistoryEntry, error) {
	return nil, nil
}

// A concurrent vote can commit between HasVoted and InsertVote. The unique
// index then rejects the insert and the counter must stay untouched.
func TestVoteService_CastVote_InsertLosesRace(t *testing.T) {
	const (
		electionID  uint = 1
		positionID  uint = 2
		candidateID uint = 3
		voterID     uint = 9
	)

	ledger := &mockVoteLedger{}
	ledger.On("FindElection", mock.Anything, electionID).
		Return(domain.Election{ID: electionID, Status: domain.ElectionActive}, nil)
	ledger.On("HasVoted", mock.Anything, electionID, voterID, positionID).Return(false, nil)
	ledger.On("FindCandidate", mock.Anything, candidateID).
		Return(domain.Candidate{ID: candidateID, PositionID: positionID}, nil)
	ledger.On("InsertVote", mock.Anything, domain.Vote{
		ElectionID:  electionID,
		VoterID:     voterID,
		PositionID:  positionID,
		CandidateID: candidateID,
	}).Return(domain.Vote{}, repository.ErrAlreadyVoted)

	svc := service.NewVoteService(&ledgerVoteRepository{ledger: ledger})

	_, err := svc.CastVote(context.Background(), electionID, positionID, candidateID, voterID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)
	ledger.AssertExpectations(t)
	ledger.AssertNotCalled(t, "IncrementVoteCount", mock.Anything, mock.Anything)
}
