package usecase

import (
	"context"
	"testing"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/internal/data/repository"
	"tour-sport/internal/dto/request"
	"tour-sport/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBookingService_CreateDefaultsToPending(t *testing.T) {
	bookings := NewBookingService(repository.NewMemoryBookingRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	inserted, err := bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		ServiceProviderEmail: "p@x.com",
		BuyerEmail:           "b@x.com",
		ServiceName:          "City Tour",
		ServicePrice:         entity.NumberPrice(100),
	})
	require.NoError(t, err)
	require.NotEmpty(t, inserted.InsertedID)

	list, err := bookings.GetBuyerBookings(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.BookingStatusPending, list[0].Status)
	assert.Equal(t, inserted.InsertedID, list[0].ID)

	byProvider, err := bookings.GetProviderBookings(ctx, "p@x.com")
	require.NoError(t, err)
	assert.Len(t, byProvider, 1)
}

func TestBookingService_UpdateStatusReturnsRecord(t *testing.T) {
	bookings := NewBookingService(repository.NewMemoryBookingRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	inserted, err := bookings.CreateBooking(ctx, &request.CreateBookingRequest{
		BuyerEmail:  "b@x.com",
		ServiceName: "City Tour",
		Message:     "hello",
		Status:      entity.BookingStatusPending,
	})
	require.NoError(t, err)

	updated, err := bookings.UpdateStatus(ctx, inserted.InsertedID, &request.UpdateStatusRequest{Status: entity.BookingStatusRejected})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRejected, updated.Status)
	assert.Equal(t, "hello", updated.Message)
	assert.Equal(t, "City Tour", updated.ServiceName)
}

func TestBookingService_MissingAndInvalid(t *testing.T) {
	bookings := NewBookingService(repository.NewMemoryBookingRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	_, err := bookings.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000001", &request.UpdateStatusRequest{Status: "accepted"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = bookings.DeleteBooking(ctx, "bad-id")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestAuthService_Login(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	auth := NewAuthService(tokens, zap.NewNop())

	resp, err := auth.Login(context.Background(), &request.LoginRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resp.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	email, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}
