package create_dining_reservation

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
	created *domain.DiningReservation
	err     error
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *domain.DiningReservation) (*domain.DiningReservation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := *reservation
	out.ID = "din-42"
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
		nil,
		[]domain.Restaurant{
			{ID: "rest-terrace", Name: "terrace", Color: "#ff9800"},
		},
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
		GuestName:  "Anna Petrova",
		GuestEmail: "anna@example.com",
		Restaurant: "terrace",
		Date:       "2024-06-10",
		TimeSlot:   "19:00",
		Adults:     2,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "din-42", resp.ID)
	assert.Equal(t, "terrace", resp.Restaurant)
	assert.Equal(t, types.DateString("2024-06-10"), resp.Date)
	assert.Equal(t, types.TimeString("19:00"), resp.TimeSlot)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.Date = "2024-06-01"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.Date = "2024-05-20"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_SlotOutsideFixedSetRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	// Корректный формат, но вне обеденного и вечернего окон
	for _, slot := range []types.TimeString{"15:00", "23:30", "19:15"} {
		req := validRequest()
		req.TimeSlot = slot
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "slot %s", slot)
	}
}

func TestExecute_UnknownRestaurantRejected(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	req := validRequest()
	req.Restaurant = "rooftop"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, testNow)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty guest name", func(req *Request) { req.GuestName = "" }},
		{"malformed email", func(req *Request) { req.GuestEmail = "nope" }},
		{"missing restaurant", func(req *Request) { req.Restaurant = "" }},
		{"malformed date", func(req *Request) { req.Date = "10/06/2024" }},
		{"malformed slot", func(req *Request) { req.TimeSlot = "7pm" }},
		{"no adults", func(req *Request) { req.Adults = 0 }},
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
