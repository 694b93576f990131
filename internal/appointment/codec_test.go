package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRoundTrip(t *testing.T) {
	amount := 120.0
	in := []Appointment{
		{
			ID:              "a1",
			DoctorID:        "d1",
			UserID:          "u1",
			DoctorName:      "Dr. Jane Doe",
			DoctorSpecialty: "Neurology",
			PatientEmail:    "john@example.com",
			Date:            "2024-03-05",
			Time:            "09:00 AM",
			Status:          StatusConfirmed,
			Notes:           "bring scans",
			CreatedAt:       time.Date(2024, 3, 1, 8, 30, 15, 123456789, time.UTC),
			PaymentStatus:   "paid",
			PaymentMethod:   "card",
			PaymentAmount:   &amount,
		},
		{
			ID:        "a2",
			DoctorID:  "d2",
			UserID:    "u2",
			Date:      "2024-04-01",
			Time:      "02:00 PM",
			Status:    StatusUnpaid,
			CreatedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
		},
	}

	data, err := EncodeCollection(in)
	require.NoError(t, err)

	out, err := DecodeCollection(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeCollection_Nil(t *testing.T) {
	data, err := EncodeCollection(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"appointments":[]}`, string(data))
}

func TestDecodeCollection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr bool
	}{
		{name: "empty", input: "", wantLen: 0},
		{name: "whitespace", input: "  \n", wantLen: 0},
		{name: "null", input: "null", wantLen: 0},
		{name: "legacy empty array", input: "[]", wantLen: 0},
		{name: "envelope without list", input: `{"version":1}`, wantLen: 0},
		{
			name:    "legacy array",
			input:   `[{"id":"x","doctorId":"d","userId":"u","status":"approved","createdAt":"2024-01-01T00:00:00Z"}]`,
			wantLen: 1,
		},
		{name: "garbage", input: "not-json", wantErr: true},
		{name: "truncated", input: `[{"id":"x"`, wantErr: true},
		{name: "future version", input: `{"version":99,"appointments":[]}`, wantErr: true},
		{name: "object without version", input: `{}`, wantErr: true},
		{name: "foreign object", input: `{"items":[{"id":"keep-me","status":"pending"}]}`, wantErr: true},
		{name: "envelope with extra field", input: `{"version":1,"appointments":[],"owner":"x"}`, wantErr: true},
		{name: "null version", input: `{"version":null,"appointments":[]}`, wantErr: true},
		{name: "zero version", input: `{"version":0,"appointments":[]}`, wantErr: true},
		{name: "negative version", input: `{"version":-3,"appointments":[]}`, wantErr: true},
		{name: "trailing data", input: `{"version":1,"appointments":[]} []`, wantErr: true},
		{name: "unknown status", input: `[{"id":"x","status":"archived"}]`, wantErr: true},
		{name: "missing id", input: `[{"status":"pending"}]`, wantErr: true},
		{name: "duplicate id", input: `[{"id":"x","status":"pending"},{"id":"x","status":"paid"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCollection([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCorruptCollection)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
