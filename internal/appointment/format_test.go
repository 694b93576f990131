package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		parsed bool
	}{
		{"2024-03-05", "March 5, 2024", true},
		{"2023-12-31", "December 31, 2023", true},
		{" 2024-02-29 ", "February 29, 2024", true},
		{"not-a-date", "not-a-date", false},
		{"2023-02-29", "2023-02-29", false},
		{"05/03/2024", "05/03/2024", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := FormatDate(tt.input)
			assert.Equal(t, tt.want, got.Text)
			assert.Equal(t, tt.parsed, got.Parsed)
			if tt.parsed {
				assert.NoError(t, got.Err)
			} else {
				assert.Error(t, got.Err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "confirmed", "completed", "cancelled", "paid", "unpaid"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, AppointmentStatus(s), got)
	}

	_, err := ParseStatus("Pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
