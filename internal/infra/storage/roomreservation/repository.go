package roomreservation

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

// Repository репозиторий бронирований номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

const reservationColumns = "id, guest_name, guest_email, guest_phone, check_in, check_out, room_category, adults, children, notes, created_at"

// Create сохраняет новое бронирование и присваивает ему идентификатор
func (r *Repository) Create(ctx context.Context, reservation *domain.RoomReservation) (*domain.RoomReservation, error) {
	reservation.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("room_reservations").
		Columns(
			"id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"check_in",
			"check_out",
			"room_category",
			"adults",
			"children",
			"notes",
		).
		Values(
			reservation.ID,
			reservation.GuestName,
			reservation.GuestEmail,
			reservation.GuestPhone,
			reservation.CheckIn.String(),
			reservation.CheckOut.String(),
			reservation.RoomCategory,
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
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.RoomReservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("room_reservations").
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

// List получает бронирования с фильтрацией.
// Фильтр по периоду выбирает бронирования, чей интервал [check_in, check_out]
// пересекается с периодом - это нужно для загрузки месяца календаря одним
// запросом.
func (r *Repository) List(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.RoomReservation, error) {
	selectBuilder := psqlbuilder.Select(reservationColumns).
		From("room_reservations").
		OrderBy("check_in ASC, created_at ASC")

	// Пересечение интервалов: check_in <= конец периода И check_out >= начало
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"check_in": filter.EndDate.String()})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"check_out": filter.StartDate.String()})
	}
	if filter.RoomCategory != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_category": *filter.RoomCategory})
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

	reservations := make([]*domain.RoomReservation, 0)
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

// Delete удаляет бронирование (физическое удаление по действию администратора)
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("room_reservations").
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

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку результата в доменную модель.
// Даты хранятся в колонках DATE и конвертируются в канонические строки.
func scanReservation(row scanner) (*domain.RoomReservation, error) {
	var (
		reservation       domain.RoomReservation
		checkIn, checkOut sql.NullTime
		createdAt         sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.GuestName,
		&reservation.GuestEmail,
		&reservation.GuestPhone,
		&checkIn,
		&checkOut,
		&reservation.RoomCategory,
		&reservation.Adults,
		&reservation.Children,
		&reservation.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CheckIn = types.NewDateString(checkIn.Time)
	reservation.CheckOut = types.NewDateString(checkOut.Time)
	reservation.CreatedAt = createdAt.Time

	return &reservation, nil
}
