package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

func roomRes(id string, checkIn, checkOut types.DateString) *domain.RoomReservation {
	return &domain.RoomReservation{
		ID:           id,
		GuestName:    "Guest " + id,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		RoomCategory: "Deluxe",
	}
}

func TestIndexRoomReservations_InclusiveCheckoutDay(t *testing.T) {
	// checkIn=2024-03-10, checkOut=2024-03-13: заняты 10, 11, 12 и 13 марта
	// (день выезда тоже индексируется), 9 и 14 марта свободны
	res := roomRes("r1", "2024-03-10", "2024-03-13")

	index, skipped := IndexRoomReservations([]*domain.RoomReservation{res}, 2024, time.March)

	assert.Empty(t, skipped)
	for _, day := range []types.DateString{"2024-03-10", "2024-03-11", "2024-03-12", "2024-03-13"} {
		require.Len(t, index[day], 1, "day %s", day)
		assert.Equal(t, "r1", index[day][0].ID)
	}
	assert.Empty(t, index["2024-03-09"])
	assert.Empty(t, index["2024-03-14"])
}

func TestIndexRoomReservations_OutsideMonthRejected(t *testing.T) {
	reservations := []*domain.RoomReservation{
		roomRes("before", "2024-02-10", "2024-02-15"),
		roomRes("after", "2024-04-02", "2024-04-05"),
	}

	index, skipped := IndexRoomReservations(reservations, 2024, time.March)

	assert.Empty(t, skipped)
	assert.Empty(t, index)
}

func TestIndexRoomReservations_ClippedToMonth(t *testing.T) {
	// Бронирование начинается в феврале и заканчивается в марте:
	// в индексе марта только мартовская часть
	res := roomRes("spanning", "2024-02-27", "2024-03-02")

	index, _ := IndexRoomReservations([]*domain.RoomReservation{res}, 2024, time.March)

	assert.Len(t, index, 2)
	assert.Len(t, index["2024-03-01"], 1)
	assert.Len(t, index["2024-03-02"], 1)

	// А в индексе февраля - только февральская
	index, _ = IndexRoomReservations([]*domain.RoomReservation{res}, 2024, time.February)
	assert.Len(t, index, 3)
	assert.Len(t, index["2024-02-27"], 1)
	assert.Len(t, index["2024-02-28"], 1)
	assert.Len(t, index["2024-02-29"], 1)
}

func TestIndexRoomReservations_MalformedDatesSkipped(t *testing.T) {
	reservations := []*domain.RoomReservation{
		roomRes("bad-in", "10.03.2024", "2024-03-13"),
		roomRes("bad-out", "2024-03-10", "garbage"),
		roomRes("good", "2024-03-10", "2024-03-11"),
	}

	index, skipped := IndexRoomReservations(reservations, 2024, time.March)

	require.Len(t, skipped, 2)
	assert.Equal(t, "bad-in", skipped[0].ReservationID)
	assert.Equal(t, "bad-out", skipped[1].ReservationID)

	// Корректное бронирование проиндексировано несмотря на битые соседние
	require.Len(t, index["2024-03-10"], 1)
	assert.Equal(t, "good", index["2024-03-10"][0].ID)
}

func TestIndexRoomReservations_MultipleInOneBucket(t *testing.T) {
	reservations := []*domain.RoomReservation{
		roomRes("a", "2024-03-10", "2024-03-12"),
		roomRes("b", "2024-03-11", "2024-03-14"),
	}

	index, _ := IndexRoomReservations(reservations, 2024, time.March)

	assert.Len(t, index["2024-03-10"], 1)
	assert.Len(t, index["2024-03-11"], 2)
	assert.Len(t, index["2024-03-12"], 2)
	assert.Len(t, index["2024-03-13"], 1)
}

func TestIndexDiningReservations(t *testing.T) {
	reservations := []*domain.DiningReservation{
		{ID: "d1", Restaurant: "Terrace", Date: "2024-03-10", TimeSlot: "19:00"},
		{ID: "d2", Restaurant: "Terrace", Date: "2024-03-10", TimeSlot: "20:00"},
		{ID: "d3", Restaurant: "Cellar", Date: "2024-04-01", TimeSlot: "19:00"},
		{ID: "bad", Restaurant: "Cellar", Date: "01-04-2024", TimeSlot: "19:00"},
	}

	index, skipped := IndexDiningReservations(reservations, 2024, time.March)

	require.Len(t, skipped, 1)
	assert.Equal(t, "bad", skipped[0].ReservationID)

	// Ровно один день на запись, записи вне месяца отброшены
	assert.Len(t, index, 1)
	assert.Len(t, index["2024-03-10"], 2)
}
