package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/service"
)

func TestVoteService_CastVote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.voteService()

	election := env.createElection(t, domain.ElectionActive)
	president := env.createPosition(t, "President")
	c1 := env.createCandidate(t, "C1", president)
	c2 := env.createCandidate(t, "C2", president)
	voter := env.createUser(t, "voter")

	vote, err := svc.CastVote(ctx, election.ID, president.ID, c1.ID, voter.ID)
	require.NoError(t, err)
	assert.NotZero(t, vote.ID)
	assert.Equal(t, c1.ID, vote.CandidateID)
	assert.Equal(t, voter.ID, vote.VoterID)

	assert.Equal(t, uint(1), env.voteCount(t, c1.ID))
	assert.Equal(t, uint(0), env.voteCount(t, c2.ID))

	_, err = svc.CastVote(ctx, election.ID, president.ID, c2.ID, voter.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.Equal(t, uint(1), env.voteCount(t, c1.ID))
	assert.Equal(t, uint(0), env.voteCount(t, c2.ID))
}

func TestVoteService_CastVote_Preconditions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.voteService()

	active := env.createElection(t, domain.ElectionActive)
	pending := env.createElection(t, domain.ElectionPending)
	completed := env.createElection(t, domain.ElectionCompleted)
	president := env.createPosition(t, "President")
	treasurer := env.createPosition(t, "Treasurer")
	c1 := env.createCandidate(t, "C1", president)
	voter := env.createUser(t, "voter")

	tests := []struct {
		name        string
		electionID  uint
		positionID  uint
		candidateID uint
		wantErr     error
		wantKind    error
	}{
		{
			name:        "unknown election",
			electionID:  completed.ID + 100,
			positionID:  president.ID,
			candidateID: c1.ID,
			wantErr:     service.ErrElectionNotFound,
			wantKind:    domain.ErrNotFound,
		},
		{
			name:        "pending election",
			electionID:  pending.ID,
			positionID:  president.ID,
			candidateID: c1.ID,
			wantErr:     service.ErrVotingNotAllowed,
			wantKind:    domain.ErrInvalidState,
		},
		{
			name:        "completed election",
			electionID:  completed.ID,
			positionID:  president.ID,
			candidateID: c1.ID,
			wantErr:     service.ErrVotingNotAllowed,
			wantKind:    domain.ErrInvalidState,
		},
		{
			name:        "candidate of another position",
			electionID:  active.ID,
			positionID:  treasurer.ID,
			candidateID: c1.ID,
			wantErr:     service.ErrCandidateNotInPosition,
			wantKind:    domain.ErrInvalidReference,
		},
		{
			name:        "unknown candidate",
			electionID:  active.ID,
			positionID:  president.ID,
			candidateID: c1.ID + 100,
			wantErr:     service.ErrCandidateNotInPosition,
			wantKind:    domain.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CastVote(ctx, tt.electionID, tt.positionID, tt.candidateID, voter.ID)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}

	assert.Equal(t, uint(0), env.voteCount(t, c1.ID))

	history, err := svc.ListVoterHistory(ctx, voter.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestVoteService_CastVote_AlreadyVotedBeforeCandidateCheck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.voteService()

	election := env.createElection(t, domain.ElectionActive)
	president := env.createPosition(t, "President")
	c1 := env.createCandidate(t, "C1", president)
	voter := env.createUser(t, "voter")

	_, err := svc.CastVote(ctx, election.ID, president.ID, c1.ID, voter.ID)
	require.NoError(t, err)

	// The duplicate is reported even though the candidate is bogus.
	_, err = svc.CastVote(ctx, election.ID, president.ID, c1.ID+100, voter.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyVoted)
}

func TestVoteService_CastVote_SeparatePositionsAndElections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.voteService()

	first := env.createElection(t, domain.ElectionActive)
	second := env.createElection(t, domain.ElectionActive)
	president := env.createPosition(t, "President")
	treasurer := env.createPosition(t, "Treasurer")
	p1 := env.createCandidate(t, "P1", president)
	t1 := env.createCandidate(t, "T1", treasurer)
	voter := env.createUser(t, "voter")

	_, err := svc.CastVote(ctx, first.ID, president.ID, p1.ID, voter.ID)
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, first.ID, treasurer.ID, t1.ID, voter.ID)
	require.NoError(t, err)
	_, err = svc.CastVote(ctx, second.ID, president.ID, p1.ID, voter.ID)
	require.NoError(t, err)

	assert.Equal(t, uint(2), env.voteCount(t, p1.ID))
	assert.Equal(t, uint(1), env.voteCount(t, t1.ID))

	history, err := svc.ListVoterHistory(ctx, voter.ID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestVoteService_CastVote_Concurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := env.voteService()

	election := env.createElection(t, domain.ElectionActive)
	president := env.createPosition(t, "President")
	c1 := env.createCandidate(t, "C1", president)
	c2 := env.createCandidate(t, "C2", president)
	voter := env.createUser(t, "voter")

	const attempts = 10
	var (
		wg        sync.WaitGroup
		successes int32
		conflicts int32
	)

	for i := 0; i < attempts; i++ {
		candidateID := c1.ID
		if i%2 == 1 {
			candidateID = c2.ID
		}

		wg.Add(1)
		go func(candidateID uint) {
			defer wg.Done()

			_, err := svc.CastVote(ctx, election.ID, president.ID, candidateID, voter.ID)
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case assert.ErrorIs(t, err, domain.ErrConflict):
				atomic.AddInt32(&conflicts, 1)
			}
		}(candidateID)
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes)
	assert.Equal(t, int32(attempts-1), conflicts)
	assert.Equal(t, uint(1), env.voteCount(t, c1.ID)+env.voteCount(t, c2.ID))
}
