package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vietanh2810/elections-api/internal/domain"
)

type RosterRepository interface {
	CreateMany(ctx context.Context, students []domain.Student) (int64, error)
}

type RosterService struct {
	repo RosterRepository
}

func NewRosterService(repo RosterRepository) *RosterService {
	return &RosterService{
		repo: repo,
	}
}

// Import loads roster rows, ignoring rows already present. It returns how
// many rows were actually inserted.
func (s *RosterService) Import(ctx context.Context, students []domain.Student) (int64, error) {
	seen := make(map[string]bool, len(students))
	unique := make([]domain.Student, 0, len(students))
	for _, st := range students {
		st.RegNo = strings.TrimSpace(st.RegNo)
		st.WebMail = strings.TrimSpace(st.WebMail)
		if seen[st.RegNo] {
			continue
		}
		seen[st.RegNo] = true
		unique = append(unique, st)
	}

	inserted, err := s.repo.CreateMany(ctx, unique)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CreateMany -> %w", err)
	}

	return inserted, nil
}
