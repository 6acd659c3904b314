package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/elections-api/internal/domain"
	"github.com/vietanh2810/elections-api/internal/repository/dao"
)

var ErrAlreadyVoted = dao.ErrAlreadyVoted

type VoteDAO interface {
	Transaction(ctx context.Context, fn func(tx *dao.Tx) error) error
	Tally(ctx context.Context, electionID uint) ([]dao.VoteTally, error)
	ListByVoter(ctx context.Context, voterID uint) ([]dao.VoteHistoryRow, error)
}

// VoteLedger is the set of reads and writes a vote needs, all bound to the
// same transaction.
type VoteLedger interface {
	FindElection(ctx context.Context, id uint) (domain.Election, error)
	HasVoted(ctx context.Context, electionID, voterID, positionID uint) (bool, error)
	FindCandidate(ctx context.Context, id uint) (domain.Candidate, error)
	InsertVote(ctx context.Context, vote domain.Vote) (domain.Vote, error)
	IncrementVoteCount(ctx context.Context, candidateID uint) error
}

type VoteRepository struct {
	dao VoteDAO
}

func NewVoteRepository(dao VoteDAO) *VoteRepository {
	return &VoteRepository{
		dao: dao,
	}
}

// Transaction commits every ledger write made by fn, or none of them if fn fails.
func (r *VoteRepository) Transaction(ctx context.Context, fn func(ledger VoteLedger) error) error {
	return r.dao.Transaction(ctx, func(tx *dao.Tx) error {
		return fn(&voteLedger{tx: tx})
	})
}

func (r *VoteRepository) Tally(ctx context.Context, electionID uint) ([]domain.PositionResult, error) {
	rows, err := r.dao.Tally(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Tally -> %w", err)
	}

	var (
		results []domain.PositionResult
		index   = make(map[uint]int)
	)
	for _, row := range rows {
		i, ok := index[row.PositionID]
		if !ok {
			i = len(results)
			index[row.PositionID] = i
			results = append(results, domain.PositionResult{PositionID: row.PositionID})
		}

		results[i].Candidates = append(results[i].Candidates, domain.CandidateTally{
			CandidateID:   row.CandidateID,
			CandidateName: row.CandidateName,
			Votes:         row.VoteCount,
		})
	}

	return results, nil
}

func (r *VoteRepository) ListByVoter(ctx context.Context, voterID uint) ([]domain.VoteHistoryEntry, error) {
	rows, err := r.dao.ListByVoter(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByVoter -> %w", err)
	}

	history := make([]domain.VoteHistoryEntry, len(rows))
	for i, row := range rows {
		history[i] = domain.VoteHistoryEntry{
			ElectionName:  row.ElectionName,
			PositionName:  row.PositionName,
			CandidateName: row.CandidateName,
			VotedAt:       row.VotedAt,
		}
	}

	return history, nil
}

type voteLedger struct {
	tx *dao.Tx
}

func (l *voteLedger) FindElection(ctx context.Context, id uint) (domain.Election, error) {
	found, err := l.tx.Elections.FindByID(ctx, id)
	if err != nil {
		return domain.Election{}, fmt.Errorf("l.tx.Elections.FindByID -> %w", err)
	}

	return electionDaoToDomain(found), nil
}

func (l *voteLedger) HasVoted(ctx context.Context, electionID, voterID, positionID uint) (bool, error) {
	voted, err := l.tx.Votes.Exists(ctx, electionID, voterID, positionID)
	if err != nil {
		return false, fmt.Errorf("l.tx.Votes.Exists -> %w", err)
	}

	return voted, nil
}

func (l *voteLedger) FindCandidate(ctx context.Context, id uint) (domain.Candidate, error) {
	found, err := l.tx.Candidates.FindByID(ctx, id)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("l.tx.Candidates.FindByID -> %w", err)
	}

	return candidateDaoToDomain(found), nil
}

func (l *voteLedger) InsertVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	created, err := l.tx.Votes.Insert(ctx, dao.Vote{
		ElectionID:  vote.ElectionID,
		VoterID:     vote.VoterID,
		PositionID:  vote.PositionID,
		CandidateID: vote.CandidateID,
	})
	if err != nil {
		return domain.Vote{}, fmt.Errorf("l.tx.Votes.Insert -> %w", err)
	}

	return domain.Vote{
		ID:          created.ID,
		ElectionID:  created.ElectionID,
		VoterID:     created.VoterID,
		PositionID:  created.PositionID,
		CandidateID: created.CandidateID,
		CreatedAt:   created.CreatedAt,
	}, nil
}

func (l *voteLedger) IncrementVoteCount(ctx context.Context, candidateID uint) error {
	if err := l.tx.Candidates.IncrementVoteCount(ctx, candidateID); err != nil {
		return fmt.Errorf("l.tx.Candidates.IncrementVoteCount -> %w", err)
	}

	return nil
}
