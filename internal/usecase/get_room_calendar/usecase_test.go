package get_room_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/internal/service/categories"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

type fakeReservationRepo struct {
	reservations []*domain.RoomReservation
	err          error
	gotFilter    domain.RoomReservationsFilter
}

func (r *fakeReservationRepo) List(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.RoomReservation, error) {
	r.gotFilter = filter
	return r.reservations, r.err
}

type fakeCategoryService struct {
	registry *categories.Registry
	err      error
}

func (s *fakeCategoryService) LoadRegistry(_ context.Context) (*categories.Registry, error) {
	return s.registry, s.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRegistry() *categories.Registry {
	return categories.NewRegistry(
		[]domain.RoomCategory{
			{ID: "cat-standard", Name: "standard", TotalUnits: 6, Color: "#4caf50"},
			{ID: "cat-deluxe", Name: "deluxe", TotalUnits: 2, Color: "#2196f3"},
		},
		nil,
	)
}

func newTestUseCase(repo *fakeReservationRepo, registry *categories.Registry, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakeCategoryService{registry: registry}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

var testNow = time.Date(2024, time.March, 11, 10, 0, 0, 0, time.Local)

func TestExecute_GridShape(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 2})
	require.NoError(t, err)

	// Февраль 2024: 4 дня хвоста января + 29 дней + 2 дня марта
	assert.Len(t, resp.Days, 35)
	assert.Equal(t, types.DateString("2024-01-28"), resp.Days[0].Date)
	assert.False(t, resp.Days[0].InMonth)
	assert.Equal(t, types.DateString("2024-03-02"), resp.Days[34].Date)
	assert.Equal(t, types.DateString("2024-03-11"), resp.Today)

	// Фильтр репозитория ограничен границами месяца
	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, types.DateString("2024-02-01"), *repo.gotFilter.StartDate)
	assert.Equal(t, types.DateString("2024-02-29"), *repo.gotFilter.EndDate)
}

func TestExecute_ReservationsAndAvailability(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.RoomReservation{
			{ID: "res-1", GuestName: "Anna", RoomCategory: "deluxe", CheckIn: "2024-03-10", CheckOut: "2024-03-13"},
			{ID: "res-2", GuestName: "Boris", RoomCategory: "deluxe", CheckIn: "2024-03-12", CheckOut: "2024-03-14"},
		},
	}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 3})
	require.NoError(t, err)

	byDate := make(map[types.DateString]Day, len(resp.Days))
	for _, day := range resp.Days {
		byDate[day.Date] = day
	}

	// Дата выезда тоже занята (включительно с обеих сторон)
	day13 := byDate["2024-03-13"]
	require.Len(t, day13.Reservations, 2)
	assert.True(t, day13.Reservations[0].IsDeparture)
	assert.Equal(t, "#2196f3", day13.Reservations[0].Color)

	require.NotNil(t, day13.Availability)
	var deluxe CategoryAvailability
	for _, cat := range day13.Availability.Categories {
		if cat.Name == "deluxe" {
			deluxe = cat
		}
	}
	assert.Equal(t, 2, deluxe.Booked)
	assert.Equal(t, 0, deluxe.Available)
	assert.Equal(t, 6, day13.Availability.TotalAvailable)

	// Накануне заезда бронирований нет
	day09 := byDate["2024-03-09"]
	assert.Empty(t, day09.Reservations)

	// Сегодняшний день отмечен
	assert.True(t, byDate["2024-03-11"].IsToday)
	assert.True(t, byDate["2024-03-10"].IsPast)
	assert.False(t, byDate["2024-03-11"].IsPast)
}

func TestExecute_PaddingCellsStayEmpty(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.RoomReservation{
			{ID: "res-1", GuestName: "Anna", RoomCategory: "standard", CheckIn: "2024-02-28", CheckOut: "2024-03-02"},
		},
	}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 2})
	require.NoError(t, err)

	// Ячейка марта в хвосте сетки февраля - заполнитель без данных
	last := resp.Days[34]
	assert.Equal(t, types.DateString("2024-03-02"), last.Date)
	assert.False(t, last.InMonth)
	assert.Empty(t, last.Reservations)
	assert.Nil(t, last.Availability)

	// Внутри месяца то же бронирование видно
	day28 := resp.Days[4+27]
	assert.Equal(t, types.DateString("2024-02-28"), day28.Date)
	require.Len(t, day28.Reservations, 1)
	assert.True(t, day28.Reservations[0].IsArrival)
}

func TestExecute_MalformedReservationSkipped(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.RoomReservation{
			{ID: "bad", GuestName: "Ghost", RoomCategory: "standard", CheckIn: "11.03.2024", CheckOut: "2024-03-13"},
			{ID: "ok", GuestName: "Anna", RoomCategory: "standard", CheckIn: "2024-03-11", CheckOut: "2024-03-12"},
		},
	}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 3})
	require.NoError(t, err)

	for _, day := range resp.Days {
		for _, res := range day.Reservations {
			assert.NotEqual(t, "bad", res.ID)
		}
	}
	assert.NotEmpty(t, resp.Days)
}

func TestExecute_UnknownCategoryColor(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.RoomReservation{
			{ID: "res-1", GuestName: "Anna", RoomCategory: "penthouse", CheckIn: "2024-03-11", CheckOut: "2024-03-12"},
		},
	}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 3})
	require.NoError(t, err)

	var found *DayReservation
	for _, day := range resp.Days {
		for i := range day.Reservations {
			if day.Reservations[i].ID == "res-1" {
				found = &day.Reservations[i]
			}
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "penthouse", found.RoomCategory)
	assert.Equal(t, domain.UnknownCategoryColor, found.Color)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testRegistry(), testNow)

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 1887, Month: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepoError(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testRegistry(), testNow)

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month: 3})
	assert.ErrorIs(t, err, ErrInternal)
}
