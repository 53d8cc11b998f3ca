package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DateString
		wantErr bool
	}{
		{name: "valid date", input: "2024-03-10", want: "2024-03-10"},
		{name: "leap day", input: "2024-02-29", want: "2024-02-29"},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "missing zero padding", input: "2024-3-1", wantErr: true},
		{name: "wrong separator", input: "2024/03/10", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateString_Comparisons(t *testing.T) {
	// Лексикографическое сравнение совпадает с хронологическим
	assert.True(t, DateString("2024-03-09").IsBefore("2024-03-10"))
	assert.True(t, DateString("2024-12-31").IsBefore("2025-01-01"))
	assert.True(t, DateString("2024-03-10").IsAfter("2024-02-28"))
	assert.False(t, DateString("2024-03-10").IsBefore("2024-03-10"))
	assert.False(t, DateString("2024-03-10").IsAfter("2024-03-10"))
}

func TestDateString_AddDays(t *testing.T) {
	tests := []struct {
		name string
		date DateString
		days int
		want DateString
	}{
		{name: "simple", date: "2024-03-10", days: 3, want: "2024-03-13"},
		{name: "month rollover", date: "2024-03-31", days: 1, want: "2024-04-01"},
		{name: "year rollover", date: "2024-12-31", days: 1, want: "2025-01-01"},
		{name: "leap february", date: "2024-02-28", days: 1, want: "2024-02-29"},
		{name: "negative", date: "2024-03-01", days: -1, want: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.date.AddDays(tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2024, time.February, 5, 23, 59, 0, 0, time.Local))
	assert.Equal(t, DateString("2024-02-05"), d)
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2024-01-01").IsZero())
}
