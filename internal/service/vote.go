package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository"
)

var (
	ErrAlreadyVoted           = repository.ErrAlreadyVoted
	ErrVotingNotAllowed       = domain.NewError(domain.ErrInvalidState, "voting not allowed")
	ErrCandidateNotInPosition = domain.NewError(domain.ErrInvalidReference, "candidate does not belong to position")
)

type VoteRepository interface {
	Transaction(ctx context.Context, fn func(ledger repository.VoteLedger) error) error
	ListByVoter(ctx context.Context, voterID uint) ([]domain.VoteHistoryEntry, error)
}

type VoteService struct {
	repo VoteRepository
}

func NewVoteService(repo VoteRepository) *VoteService {
	return &VoteService{
		repo: repo,
	}
}

// CastVote records one vote and bumps the candidate's counter in a single
// transaction. Preconditions are checked in order: election exists, election
// is active, voter has not voted for the position, candidate stands for the
// position. The unique index on (election, voter, position) settles races the
// HasVoted check cannot see.
func (s *VoteService) CastVote(ctx context.Context, electionID, positionID, candidateID, voterID uint) (domain.Vote, error) {
	var vote domain.Vote

	err := s.repo.Transaction(ctx, func(ledger repository.VoteLedger) error {
		election, err := ledger.FindElection(ctx, electionID)
		if err != nil {
			return fmt.Errorf("ledger.FindElection -> %w", err)
		}

		if !election.AcceptsVotes() {
			return ErrVotingNotAllowed
		}

		voted, err := ledger.HasVoted(ctx, electionID, voterID, positionID)
		if err != nil {
			return fmt.Errorf("ledger.HasVoted -> %w", err)
		}
		if voted {
			return ErrAlreadyVoted
		}

		candidate, err := ledger.FindCandidate(ctx, candidateID)
		if err != nil {
			if errors.Is(err, repository.ErrCandidateNotFound) {
				return ErrCandidateNotInPosition
			}

			return fmt.Errorf("ledger.FindCandidate -> %w", err)
		}
		if candidate.PositionID != positionID {
			return ErrCandidateNotInPosition
		}

		vote, err = ledger.InsertVote(ctx, domain.Vote{
			ElectionID:  electionID,
			VoterID:     voterID,
			PositionID:  positionID,
			CandidateID: candidateID,
		})
		if err != nil {
			return fmt.Errorf("ledger.InsertVote -> %w", err)
		}

		if err = ledger.IncrementVoteCount(ctx, candidateID); err != nil {
			return fmt.Errorf("ledger.IncrementVoteCount -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Vote{}, fmt.Errorf("s.repo.Transaction -> %w", err)
	}

	return vote, nil
}

func (s *VoteService) ListVoterHistory(ctx context.Context, voterID uint) ([]domain.VoteHistoryEntry, error) {
	history, err := s.repo.ListByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByVoter -> %w", err)
	}

	return history, nil
}
