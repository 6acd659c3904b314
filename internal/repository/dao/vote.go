package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vietanh2810/elections-api/internal/domain"
)

var ErrAlreadyVoted = domain.NewError(domain.ErrConflict, "already voted for this position")

type Vote struct {
	ID          uint      `gorm:"primaryKey"`
	ElectionID  uint      `gorm:"not null;uniqueIndex:idx_votes_election_voter_position,priority:1"`
	Election    Election  `gorm:"constraint:OnDelete:CASCADE"`
	VoterID     uint      `gorm:"not null;uniqueIndex:idx_votes_election_voter_position,priority:2;index"`
	Voter       User      `gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE"`
	PositionID  uint      `gorm:"not null;uniqueIndex:idx_votes_election_voter_position,priority:3"`
	Position    Position  `gorm:"constraint:OnDelete:CASCADE"`
	CandidateID uint      `gorm:"not null;index"`
	Candidate   Candidate `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}

// VoteTally is one (position, candidate) group of the vote ledger.
type VoteTally struct {
	PositionID    uint
	CandidateID   uint
	CandidateName string
	VoteCount     int64
}

type VoteHistoryRow struct {
	ElectionName  string
	PositionName  string
	CandidateName string
	VotedAt       time.Time
}

// Tx groups the DAOs bound to one database transaction.
type Tx struct {
	Elections  *ElectionDAO
	Candidates *CandidateDAO
	Votes      *VoteDAO
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// Transaction runs fn inside a database transaction. Returning an error from
// fn rolls back every write made through tx.
func (d *VoteDAO) Transaction(ctx context.Context, fn func(tx *Tx) error) error {
	return d.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&Tx{
			Elections:  NewElectionDAO(db),
			Candidates: NewCandidateDAO(db),
			Votes:      NewVoteDAO(db),
		})
	})
}

func (d *VoteDAO) Exists(ctx context.Context, electionID, voterID, positionID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Vote{}).
		Where("election_id = ? AND voter_id = ? AND position_id = ?", electionID, voterID, positionID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Insert relies on idx_votes_election_voter_position: a concurrent duplicate
// that slipped past Exists fails here with ErrAlreadyVoted.
func (d *VoteDAO) Insert(ctx context.Context, vote Vote) (Vote, error) {
	result := d.db.WithContext(ctx).
		Omit("Election", "Voter", "Position", "Candidate").
		Create(&vote)
	if result.Error != nil {
		if _, ok := uniqueViolation(result.Error); ok {
			return Vote{}, ErrAlreadyVoted
		}

		return Vote{}, result.Error
	}

	return vote, nil
}

// Tally counts ledger rows of an election grouped by position and candidate.
// Groups come back in the order their first vote was cast.
func (d *VoteDAO) Tally(ctx context.Context, electionID uint) ([]VoteTally, error) {
	var rows []VoteTally

	result := d.db.WithContext(ctx).Table("votes").
		Select("votes.position_id, votes.candidate_id, candidates.name AS candidate_name, COUNT(votes.id) AS vote_count").
		Joins("JOIN candidates ON candidates.id = votes.candidate_id").
		Where("votes.election_id = ?", electionID).
		Group("votes.position_id, votes.candidate_id, candidates.name").
		Order("MIN(votes.id) ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// ListByVoter returns a voter's votes, newest first.
func (d *VoteDAO) ListByVoter(ctx context.Context, voterID uint) ([]VoteHistoryRow, error) {
	var rows []VoteHistoryRow

	result := d.db.WithContext(ctx).Table("votes").
		Select("elections.name AS election_name, positions.name AS position_name, candidates.name AS candidate_name, votes.created_at AS voted_at").
		Joins("JOIN elections ON elections.id = votes.election_id").
		Joins("JOIN positions ON positions.id = votes.position_id").
		Joins("JOIN candidates ON candidates.id = votes.candidate_id").
		Where("votes.voter_id = ?", voterID).
		Order("votes.created_at DESC, votes.id DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}
