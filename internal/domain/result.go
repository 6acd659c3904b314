package domain

// CandidateTally is the number of ledger votes a candidate received.
type CandidateTally struct {
	CandidateID   uint
	CandidateName string
	Votes         int64
}

// PositionResult holds the tallies of one position, in grouping order.
type PositionResult struct {
	PositionID   uint
	PositionName string
	Candidates   []CandidateTally
}
