package diningreservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/castelmar/CH-BookingService/internal/domain"
	"github.com/castelmar/CH-BookingService/pkg/psqlbuilder"
	"github.com/castelmar/CH-BookingService/pkg/types"
)

// Repository репозиторий бронирований столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований столиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const reservationColumns = "id, guest_name, guest_email, guest_phone, restaurant, reservation_date, time_slot, adults, children, notes, created_at"

// Create сохраняет новое бронирование столика
func (r *Repository) Create(ctx context.Context, reservation *domain.DiningReservation) (*domain.DiningReservation, error) {
	reservation.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("dining_reservations").
		Columns(
			"id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"restaurant",
			"reservation_date",
			"time_slot",
			"adults",
			"children",
			"notes",
		).
		Values(
			reservation.ID,
			reservation.GuestName,
			reservation.GuestEmail,
			reservation.GuestPhone,
			reservation.Restaurant,
			reservation.Date.String(),
			reservation.TimeSlot.String(),
			reservation.Adults,
			reservation.Children,
			reservation.Notes,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.DiningReservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("dining_reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	reservation, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает бронирования столиков с фильтрацией по дате и ресторану
func (r *Repository) List(ctx context.Context, filter domain.DiningReservationsFilter) ([]*domain.DiningReservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns).
		From("dining_reservations").
		OrderBy("reservation_date ASC, time_slot ASC")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": filter.Date.String()})
	}
	if filter.Restaurant != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"restaurant": *filter.Restaurant})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.DiningReservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// ListByMonth получает бронирования столиков, попадающие в указанный период.
// Используется для календаря ресторана: один запрос на месяц.
func (r *Repository) ListByMonth(ctx context.Context, start, end types.DateString) ([]*domain.DiningReservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("dining_reservations").
		Where(squirrel.GtOrEq{"reservation_date": start.String()}).
		Where(squirrel.LtOrEq{"reservation_date": end.String()}).
		OrderBy("reservation_date ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.DiningReservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMonth - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Delete удаляет бронирование столика
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("dining_reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.DiningReservation, error) {
	var (
		reservation domain.DiningReservation
		date        sql.NullTime
		timeSlot    string
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.GuestName,
		&reservation.GuestEmail,
		&reservation.GuestPhone,
		&reservation.Restaurant,
		&date,
		&timeSlot,
		&reservation.Adults,
		&reservation.Children,
		&reservation.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.Date = types.NewDateString(date.Time)
	reservation.TimeSlot = types.TimeString(timeSlot)
	reservation.CreatedAt = createdAt.Time

	return &reservation, nil
}
