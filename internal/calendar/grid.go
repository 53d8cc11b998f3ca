package calendar

import (
	"time"

	"github.com/castelmar/CH-BookingService/pkg/types"
)

// DaysPerWeek количество ячеек в строке календарной сетки
const DaysPerWeek = 7

// DayCell is one cell of a month grid: a date plus a flag telling whether it
// belongs to the displayed month or is padding from an adjacent month.
type DayCell struct {
	Date    types.DateString
	InMonth bool
}

// BuildMonthGrid builds the calendar grid for the given month: a sequence of
// day cells whose length is always a multiple of 7 and whose first cell is
// always a Sunday. Days of the previous month pad the first week, days of the
// next month pad the last week; both carry InMonth=false.
//
// Детерминированная чистая функция: одинаковый (year, month) всегда даёт
// одинаковую сетку.
func BuildMonthGrid(year int, month time.Month) []DayCell {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// День недели первого числа: 0 = воскресенье
	leading := int(firstOfMonth.Weekday())
	daysInMonth := daysIn(year, month)

	total := leading + daysInMonth
	if rem := total % DaysPerWeek; rem != 0 {
		total += DaysPerWeek - rem
	}

	cells := make([]DayCell, 0, total)

	// Хвост предыдущего месяца
	for i := leading; i > 0; i-- {
		d := firstOfMonth.AddDate(0, 0, -i)
		cells = append(cells, DayCell{Date: types.NewDateString(d), InMonth: false})
	}

	// Дни отображаемого месяца
	for day := 0; day < daysInMonth; day++ {
		d := firstOfMonth.AddDate(0, 0, day)
		cells = append(cells, DayCell{Date: types.NewDateString(d), InMonth: true})
	}

	// Начало следующего месяца до кратности неделе
	for day := 0; len(cells) < total; day++ {
		d := firstOfMonth.AddDate(0, 1, day)
		cells = append(cells, DayCell{Date: types.NewDateString(d), InMonth: false})
	}

	return cells
}

// daysIn возвращает количество дней в месяце с учётом високосных лет
func daysIn(year int, month time.Month) int {
	// Нулевой день следующего месяца = последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// MonthBounds returns the first and last date of the given month
func MonthBounds(year int, month time.Month) (types.DateString, types.DateString) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return types.NewDateString(first), types.NewDateString(last)
}
