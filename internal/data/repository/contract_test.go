package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/database"
	"tour-sport/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// storeContract exercises the behaviour every backend must share. missingID is a
// well-formed id that does not exist in the backend.
func storeContract(t *testing.T, repo *Repository, missingID string) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	t.Run("service lifecycle", func(t *testing.T) {
		service := newTestService("City Tour", "contract@x.com", 100)
		service.CreatedAt, service.UpdatedAt = now, now
		require.NoError(t, repo.Service.Create(ctx, service))
		require.NotEmpty(t, service.ID)

		mine, err := repo.Service.FindByProviderEmail(ctx, "contract@x.com")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, service.ID, mine[0].ID)

		found, err := repo.Service.FindAll(ctx, "CITY")
		require.NoError(t, err)
		assert.NotEmpty(t, found)

		service.Price = entity.NumberPrice(150)
		service.UpdatedAt = now.Add(time.Second)
		matched, err := repo.Service.Update(ctx, service)
		require.NoError(t, err)
		assert.Equal(t, int64(1), matched)

		got, err := repo.Service.FindByID(ctx, service.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.NumberPrice(150), got.Price)
		assert.Equal(t, "City Tour", got.Name)

		require.NoError(t, repo.Service.Delete(ctx, service.ID))
		assert.ErrorIs(t, repo.Service.Delete(ctx, service.ID), ErrNotFound)

		_, err = repo.Service.FindByID(ctx, service.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("price kept as sent", func(t *testing.T) {
		for _, price := range []entity.Price{entity.StringPrice("100"), entity.NumberPrice(12.5), ""} {
			service := newTestService("Priced", "price@x.com", 0)
			service.Price = price
			service.CreatedAt, service.UpdatedAt = now, now
			require.NoError(t, repo.Service.Create(ctx, service))

			got, err := repo.Service.FindByID(ctx, service.ID)
			require.NoError(t, err)
			assert.Equal(t, price, got.Price)
		}
	})

	t.Run("service missing and invalid ids", func(t *testing.T) {
		_, err := repo.Service.FindByID(ctx, missingID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.Service.FindByID(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)

		ghost := newTestService("Ghost", "contract@x.com", 1)
		ghost.ID = missingID
		matched, err := repo.Service.Update(ctx, ghost)
		require.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})

	t.Run("booking status", func(t *testing.T) {
		booking := &entity.Booking{
			Base:                 entity.Base{CreatedAt: now, UpdatedAt: now},
			ServiceProviderEmail: "provider@x.com",
			BuyerEmail:           "buyer@x.com",
			ServiceName:          "City Tour",
			ServicePrice:         entity.StringPrice("100"),
			Message:              "see you",
			Status:               entity.BookingStatusPending,
		}
		require.NoError(t, repo.Booking.Create(ctx, booking))

		require.NoError(t, repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusAccepted))

		got, err := repo.Booking.FindByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusAccepted, got.Status)
		assert.Equal(t, "see you", got.Message)
		assert.Equal(t, entity.StringPrice("100"), got.ServicePrice)

		byBuyer, err := repo.Booking.FindByBuyerEmail(ctx, "buyer@x.com")
		require.NoError(t, err)
		assert.Len(t, byBuyer, 1)

		byProvider, err := repo.Booking.FindByProviderEmail(ctx, "provider@x.com")
		require.NoError(t, err)
		assert.Len(t, byProvider, 1)

		require.NoError(t, repo.Booking.Delete(ctx, booking.ID))
		assert.ErrorIs(t, repo.Booking.Delete(ctx, booking.ID), ErrNotFound)
		assert.ErrorIs(t, repo.Booking.UpdateStatus(ctx, missingID, "accepted"), ErrNotFound)
	})
}

func TestStoreContract_Memory(t *testing.T) {
	storeContract(t, NewMemoryRepository(zap.NewNop()), "00000000-0000-0000-0000-000000000001")
}

func TestStoreContract_Postgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.InitDB(utils.DatabaseConfig{URL: url, MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	schema, err := os.ReadFile("../../../db/schema.sql")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx, string(schema))
	require.NoError(t, err)
	_, err = db.Exec(ctx, `TRUNCATE services, bookings`)
	require.NoError(t, err)

	storeContract(t, NewPostgresRepository(db, zap.NewNop()), "00000000-0000-0000-0000-000000000001")
}

func TestStoreContract_Mongo(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}

	client, err := database.InitMongo(utils.DatabaseConfig{URL: uri, MaxConns: 2})
	require.NoError(t, err)

	ctx := context.Background()
	db := client.Database("tourSportTest")
	for _, name := range []string{serviceCollection, bookingCollection} {
		_, err := db.Collection(name).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}

	repo := NewMongoRepository(db, zap.NewNop())
	t.Cleanup(func() { _ = repo.Close(context.Background()) })

	storeContract(t, repo, primitive.NewObjectID().Hex())
}
