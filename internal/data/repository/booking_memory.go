package repository

import (
	"context"
	"fmt"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

var _ BookingRepository = (*memoryBookingRepository)(nil)

type memoryBookingRepository struct {
	table *memTable[entity.Booking]
	log   *zap.Logger
}

func NewMemoryBookingRepository(log *zap.Logger) BookingRepository {
	return &memoryBookingRepository{
		table: newMemTable[entity.Booking](),
		log:   log.With(zap.String("repository", "booking"), zap.String("driver", DriverMemory)),
	}
}

func (r *memoryBookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	booking.ID = utils.GenerateUUIDString()
	r.table.insert(booking.ID, *booking)
	return nil
}

func (r *memoryBookingRepository) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	key, err := memKey(id)
	if err != nil {
		return nil, err
	}

	booking, ok := r.table.get(key)
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return &booking, nil
}

func (r *memoryBookingRepository) FindByBuyerEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	return toPointers(r.table.filter(func(b entity.Booking) bool {
		return b.BuyerEmail == email
	})), nil
}

func (r *memoryBookingRepository) FindByProviderEmail(_ context.Context, email string) ([]*entity.Booking, error) {
	return toPointers(r.table.filter(func(b entity.Booking) bool {
		return b.ServiceProviderEmail == email
	})), nil
}

func (r *memoryBookingRepository) UpdateStatus(_ context.Context, id, status string) error {
	key, err := memKey(id)
	if err != nil {
		return err
	}

	updated := r.table.update(key, func(stored *entity.Booking) {
		stored.Status = status
		stored.UpdatedAt = time.Now()
	})
	if !updated {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *memoryBookingRepository) Delete(_ context.Context, id string) error {
	key, err := memKey(id)
	if err != nil {
		return err
	}

	if !r.table.remove(key) {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}
