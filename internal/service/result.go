package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/vietanh2810/elections-api/internal/domain"
)

type ResultElectionRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Election, error)
}

type ResultPositionRepository interface {
	List(ctx context.Context) ([]domain.Position, error)
}

type ResultCandidateRepository interface {
	List(ctx context.Context) ([]domain.Candidate, error)
}

type VoteTallyRepository interface {
	Tally(ctx context.Context, electionID uint) ([]domain.PositionResult, error)
}

// ResultService aggregates the vote ledger. It never reads the candidates'
// vote_count column, which is a display convenience only.
type ResultService struct {
	elections  ResultElectionRepository
	positions  ResultPositionRepository
	candidates ResultCandidateRepository
	votes      VoteTallyRepository

	includeZeroVotes atomic.Bool
}

func NewResultService(
	elections ResultElectionRepository,
	positions ResultPositionRepository,
	candidates ResultCandidateRepository,
	votes VoteTallyRepository,
	includeZeroVotes bool,
) *ResultService {
	s := &ResultService{
		elections:  elections,
		positions:  positions,
		candidates: candidates,
		votes:      votes,
	}
	s.includeZeroVotes.Store(includeZeroVotes)

	return s
}

// SetIncludeZeroVotes toggles listing candidates without votes. Safe to call
// while results are being served.
func (s *ResultService) SetIncludeZeroVotes(include bool) {
	s.includeZeroVotes.Store(include)
}

// GetResults returns one entry per position, in creation order. By default a
// position only lists candidates with at least one vote in the election.
func (s *ResultService) GetResults(ctx context.Context, electionID uint) ([]domain.PositionResult, error) {
	if _, err := s.elections.FindByID(ctx, electionID); err != nil {
		return nil, fmt.Errorf("s.elections.FindByID -> %w", err)
	}

	positions, err := s.positions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.positions.List -> %w", err)
	}

	tallies, err := s.votes.Tally(ctx, electionID)
	if err != nil {
		return nil, fmt.Errorf("s.votes.Tally -> %w", err)
	}

	counted := make(map[uint][]domain.CandidateTally, len(tallies))
	for _, t := range tallies {
		counted[t.PositionID] = t.Candidates
	}

	var roster map[uint][]domain.Candidate
	if s.includeZeroVotes.Load() {
		candidates, err := s.candidates.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("s.candidates.List -> %w", err)
		}

		roster = make(map[uint][]domain.Candidate)
		for _, c := range candidates {
			roster[c.PositionID] = append(roster[c.PositionID], c)
		}
	}

	results := make([]domain.PositionResult, 0, len(positions))
	for _, p := range positions {
		candidates := counted[p.ID]
		if roster != nil {
			candidates = withZeroVotes(candidates, roster[p.ID])
		}

		results = append(results, domain.PositionResult{
			PositionID:   p.ID,
			PositionName: p.Name,
			Candidates:   candidates,
		})
	}

	return results, nil
}

// withZeroVotes appends every roster candidate missing from tallies with a
// count of zero.
func withZeroVotes(tallies []domain.CandidateTally, roster []domain.Candidate) []domain.CandidateTally {
	seen := make(map[uint]bool, len(tallies))
	for _, t := range tallies {
		seen[t.CandidateID] = true
	}

	for _, c := range roster {
		if seen[c.ID] {
			continue
		}
		tallies = append(tallies, domain.CandidateTally{
			CandidateID:   c.ID,
			CandidateName: c.Name,
		})
	}

	return tallies
}
