// Package roster reads the student eligibility list exported by the
// registry office.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vietanh2810/elections-api/internal/domain"
)

const (
	regNoColumn   = "REGNO"
	webMailColumn = "WEBMAIL"
)

var ErrMissingColumn = errors.New("roster: REGNO and WEBMAIL columns are required")

// Parse reads a CSV roster. The header row is matched case-insensitively and
// extra columns are ignored. Blank rows are skipped.
func Parse(r io.Reader) ([]domain.Student, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingColumn
		}
		return nil, fmt.Errorf("reader.Read -> %w", err)
	}

	regNoIdx, webMailIdx := -1, -1
	for i, name := range header {
		switch strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case regNoColumn:
			regNoIdx = i
		case webMailColumn:
			webMailIdx = i
		}
	}
	if regNoIdx < 0 || webMailIdx < 0 {
		return nil, ErrMissingColumn
	}

	var students []domain.Student
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read -> %w", err)
		}

		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		regNo := field(record, regNoIdx)
		webMail := field(record, webMailIdx)
		if regNo == "" || webMail == "" {
			return nil, fmt.Errorf("roster: line %d: both %s and %s are required", line, regNoColumn, webMailColumn)
		}

		students = append(students, domain.Student{
			RegNo:   regNo,
			WebMail: webMail,
		})
	}

	return students, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
