package domain

import "time"

type Vote struct {
	ID          uint      `json:"id"`
	ElectionID  uint      `json:"election_id"`
	VoterID     uint      `json:"voter_id"`
	PositionID  uint      `json:"position_id"`
	CandidateID uint      `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// VoteHistoryEntry is one of a voter's past votes with the names resolved.
type VoteHistoryEntry struct {
	ElectionName  string    `json:"election_name"`
	PositionName  string    `json:"position_name"`
	CandidateName string    `json:"candidate_name"`
	VotedAt       time.Time `json:"voted_at"`
}
