package repository

import (
	"context"
	"errors"
	"fmt"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/database"
	"tour-sport/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the storage capability behind the booking handlers.
type BookingRepository interface {
	// Create assigns booking.ID.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByBuyerEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	FindByProviderEmail(ctx context.Context, email string) ([]*entity.Booking, error)
	// UpdateStatus changes only status (and updated_at).
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

const bookingColumns = `id::text, service_provider_email, buyer_email, service_name, service_image,
		service_price, service_taking_date, message, status, created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, service_provider_email, buyer_email, service_name, service_image,
		                      service_price, service_taking_date, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	booking.ID = utils.GenerateUUIDString()
	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ServiceProviderEmail,
		booking.BuyerEmail,
		booking.ServiceName,
		booking.ServiceImage,
		booking.ServicePrice,
		booking.ServiceTakingDate,
		booking.Message,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("buyer_email", utils.MaskEmail(booking.BuyerEmail)),
			zap.String("service_name", booking.ServiceName),
		)
		return fmt.Errorf("create booking for %s: %w", utils.MaskEmail(booking.BuyerEmail), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookingID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, invalidID(id, err)
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBuyerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE buyer_email = $1 ORDER BY created_at, id`

	bookings, err := r.queryBookings(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by buyer",
			zap.Error(err),
			zap.String("buyer_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find bookings by buyer %s: %w", utils.MaskEmail(email), err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByProviderEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE service_provider_email = $1 ORDER BY created_at, id`

	bookings, err := r.queryBookings(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by provider",
			zap.Error(err),
			zap.String("provider_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find bookings by provider %s: %w", utils.MaskEmail(email), err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	bookingID, err := utils.ParseUUID(id)
	if err != nil {
		return invalidID(id, err)
	}

	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", status),
		)
		return fmt.Errorf("update booking status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	bookingID, err := utils.ParseUUID(id)
	if err != nil {
		return invalidID(id, err)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.ServiceProviderEmail,
		&booking.BuyerEmail,
		&booking.ServiceName,
		&booking.ServiceImage,
		&booking.ServicePrice,
		&booking.ServiceTakingDate,
		&booking.Message,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
