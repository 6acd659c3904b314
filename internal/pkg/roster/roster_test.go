package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/elections-api/internal/domain"
)

func TestParse(t *testing.T) {
	input := "Name,regno,WebMail\n" +
		"Ada, 2020/001 ,ada@uni.edu\n" +
		",,\n" +
		"Bob,2020/002,bob@uni.edu\n"

	students, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []domain.Student{
		{RegNo: "2020/001", WebMail: "ada@uni.edu"},
		{RegNo: "2020/002", WebMail: "bob@uni.edu"},
	}, students)
}

func TestParse_MissingColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty file", input: ""},
		{name: "no webmail column", input: "REGNO,NAME\n2020/001,Ada\n"},
		{name: "no regno column", input: "WEBMAIL\nada@uni.edu\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestParse_RowMissingField(t *testing.T) {
	input := "REGNO,WEBMAIL\n2020/001,ada@uni.edu\n2020/002,\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParse_ShortRow(t *testing.T) {
	input := "REGNO,WEBMAIL\n2020/001\n"

	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
