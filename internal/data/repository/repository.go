package repository

import (
	"context"
	"fmt"

	"tour-sport/pkg/database"
	"tour-sport/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Repository bundles the resource stores of one backend together with its lifecycle.
type Repository struct {
	Service ServiceRepository
	Booking BookingRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Service: NewServiceRepository(db, log),
		Booking: NewBookingRepository(db, log),
		ping:    db.Ping,
		close: func(context.Context) error {
			db.Close()
			return nil
		},
	}
}

func NewMongoRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		Service: NewMongoServiceRepository(db, log),
		Booking: NewMongoBookingRepository(db, log),
		ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
		close: db.Client().Disconnect,
	}
}

func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Service: NewMemoryServiceRepository(log),
		Booking: NewMemoryBookingRepository(log),
	}
}

// Open connects the backend selected by config.Driver.
func Open(config utils.DatabaseConfig, log *zap.Logger) (*Repository, error) {
	switch config.Driver {
	case DriverPostgres:
		db, err := database.InitDB(config)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return NewPostgresRepository(db, log), nil

	case DriverMongo:
		client, err := database.InitMongo(config)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		return NewMongoRepository(client.Database(config.Name), log), nil

	case DriverMemory:
		log.Warn("Using in-memory store, data is lost on restart")
		return NewMemoryRepository(log), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Driver)
	}
}

// Ping reports whether the backing store answers.
func (r *Repository) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// Close releases the store connection. Safe to call on the memory backend.
func (r *Repository) Close(ctx context.Context) error {
	if r.close == nil {
		return nil
	}
	return r.close(ctx)
}
