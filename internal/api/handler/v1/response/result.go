package response

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vietanh2810/elections-api/internal/domain"
)

type PositionResult struct {
	Position   string                                `json:"position"`
	Candidates *orderedmap.OrderedMap[string, int64] `json:"candidates" swaggertype:"object,integer"`
}

// NewResults maps each candidate name to its vote count, keeping the tally
// order. A repeated name keeps its first slot and takes the later count.
func NewResults(results []domain.PositionResult) []PositionResult {
	out := make([]PositionResult, 0, len(results))
	for _, r := range results {
		counts := orderedmap.New[string, int64]()
		for _, t := range r.Candidates {
			counts.Set(t.CandidateName, t.Votes)
		}

		out = append(out, PositionResult{
			Position:   r.PositionName,
			Candidates: counts,
		})
	}
	return out
}
