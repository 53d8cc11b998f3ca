package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

func TestBuildMonthGrid_February2024(t *testing.T) {
	// 1 февраля 2024 - четверг: 4 ведущих дня января, 29 дней февраля,
	// добивка до 35 ячеек (5 недель)
	cells := BuildMonthGrid(2024, time.February)

	require.Len(t, cells, 35)

	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth, "leap-year February has 29 in-month cells")

	assert.Equal(t, types.DateString("2024-01-28"), cells[0].Date)
	assert.False(t, cells[0].InMonth)
	assert.Equal(t, types.DateString("2024-02-01"), cells[4].Date)
	assert.True(t, cells[4].InMonth)
	assert.Equal(t, types.DateString("2024-03-02"), cells[34].Date)
	assert.False(t, cells[34].InMonth)
}

func TestBuildMonthGrid_FirstCellIsSunday(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := BuildMonthGrid(year, month)

			require.NotEmpty(t, cells)
			assert.Zero(t, len(cells)%DaysPerWeek,
				"%d-%02d: grid length %d is not a multiple of 7", year, month, len(cells))

			first, err := cells[0].Date.Time()
			require.NoError(t, err)
			assert.Equal(t, time.Sunday, first.Weekday(),
				"%d-%02d: first cell is %s, not Sunday", year, month, first.Weekday())
		}
	}
}

func TestBuildMonthGrid_InMonthCellCount(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2024, time.January, 31},
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2100, time.February, 28}, // столетие, не високосный
		{2000, time.February, 29}, // кратно 400, високосный
	}

	for _, tt := range tests {
		cells := BuildMonthGrid(tt.year, tt.month)
		inMonth := 0
		for _, c := range cells {
			if c.InMonth {
				inMonth++
			}
		}
		assert.Equal(t, tt.days, inMonth, "%d-%02d", tt.year, tt.month)
	}
}

func TestBuildMonthGrid_YearRollover(t *testing.T) {
	// Декабрь 2024 переходит в январь 2025 в последней неделе
	cells := BuildMonthGrid(2024, time.December)

	last := cells[len(cells)-1]
	assert.False(t, last.InMonth)
	assert.Equal(t, types.DateString("2025-01-04"), last.Date)

	// Январь 2025 начинается с хвоста декабря 2024
	cells = BuildMonthGrid(2025, time.January)
	assert.Equal(t, types.DateString("2024-12-29"), cells[0].Date)
	assert.False(t, cells[0].InMonth)
}

func TestBuildMonthGrid_Deterministic(t *testing.T) {
	a := BuildMonthGrid(2024, time.June)
	b := BuildMonthGrid(2024, time.June)
	assert.Equal(t, a, b)
}

func TestBuildMonthGrid_NoLeadingPadding(t *testing.T) {
	// Сентябрь 2024 начинается в воскресенье - ведущих ячеек нет
	cells := BuildMonthGrid(2024, time.September)
	assert.Equal(t, types.DateString("2024-09-01"), cells[0].Date)
	assert.True(t, cells[0].InMonth)
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2024, time.February)
	assert.Equal(t, types.DateString("2024-02-01"), first)
	assert.Equal(t, types.DateString("2024-02-29"), last)

	first, last = MonthBounds(2024, time.December)
	assert.Equal(t, types.DateString("2024-12-01"), first)
	assert.Equal(t, types.DateString("2024-12-31"), last)
}
