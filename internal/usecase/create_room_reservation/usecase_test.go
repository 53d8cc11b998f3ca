package create_room_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/internal/service/categories"
	"github.com/castelmar/CH-BookingService/pkg/ptr"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

type fakeReservationRepo struct {
	created *domain.RoomReservation
	err     error
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *domain.RoomReservation) (*domain.RoomReservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := *reservation
	out.ID = "res-42"
	out.CreatedAt = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	r.created = &out
	return &out, nil
}

type fakeCategoryService struct {
	registry *categories.Registry
}

func (s *fakeCategoryService) LoadRegistry(_ context.Context) (*categories.Registry, error) {
	return s.registry, nil
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
			{ID: "cat-deluxe", Name: "deluxe", TotalUnits: 2, Color: "#2196f3"},
		},
		nil,
	)
}

func newTestUseCase(repo *fakeReservationRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakeCategoryService{registry: testRegistry()}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.Local)

func validRequest() *Request {
	return &Request{
		GuestName:    "Anna Petrova",
		GuestEmail:   "anna@example.com",
		GuestPhone:   "+7 900 000-00-00",
		CheckIn:      "2024-06-10",
		CheckOut:     "2024-06-13",
		RoomCategory: "deluxe",
		Adults:       2,
		Children:     1,
		Notes:        ptr.Ptr("late arrival"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "res-42", resp.ID)
	assert.Equal(t, types.DateString("2024-06-10"), resp.CheckIn)
	assert.Equal(t, types.DateString("2024-06-13"), resp.CheckOut)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "deluxe", resp.RoomCategory)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "late arrival", *resp.Notes)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Anna Petrova", repo.created.GuestName)
}

func TestExecute_CheckInTodayAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.CheckIn = "2024-06-01"
	req.CheckOut = "2024-06-02"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_DateRangeRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	// Выезд раньше заезда
	req := validRequest()
	req.CheckIn = "2024-06-13"
	req.CheckOut = "2024-06-10"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Заезд и выезд в один день (ноль ночей)
	req = validRequest()
	req.CheckIn = "2024-06-10"
	req.CheckOut = "2024-06-10"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_PastCheckInRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.CheckIn = "2024-05-20"
	req.CheckOut = "2024-05-25"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_UnknownCategoryRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.RoomCategory = "penthouse"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty guest name", func(req *Request) { req.GuestName = "  " }},
		{"missing email", func(req *Request) { req.GuestEmail = "" }},
		{"malformed email", func(req *Request) { req.GuestEmail = "not-an-email" }},
		{"malformed check-in", func(req *Request) { req.CheckIn = "10.06.2024" }},
		{"missing check-out", func(req *Request) { req.CheckOut = "" }},
		{"no adults", func(req *Request) { req.Adults = 0 }},
		{"too many adults", func(req *Request) { req.Adults = 11 }},
		{"negative children", func(req *Request) { req.Children = -1 }},
		{"missing category", func(req *Request) { req.RoomCategory = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepoError(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
