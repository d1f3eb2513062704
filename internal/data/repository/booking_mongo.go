package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const bookingCollection = "booking"

type bookingDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	ServiceProviderEmail string             `bson:"serviceProviderEmail"`
	BuyerEmail           string             `bson:"buyerEmail"`
	ServiceName          string             `bson:"serviceName"`
	ServiceImage         string             `bson:"serviceImage"`
	ServicePrice         any                `bson:"servicePrice"`
	ServiceTakingDate    string             `bson:"serviceTakingDate"`
	Message              string             `bson:"message"`
	Status               string             `bson:"status"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt"`
}

func (d *bookingDocument) toEntity() *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		ServiceProviderEmail: d.ServiceProviderEmail,
		BuyerEmail:           d.BuyerEmail,
		ServiceName:          d.ServiceName,
		ServiceImage:         d.ServiceImage,
		ServicePrice:         entity.PriceOf(d.ServicePrice),
		ServiceTakingDate:    d.ServiceTakingDate,
		Message:              d.Message,
		Status:               d.Status,
	}
}

type mongoBookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoBookingRepository(db *mongo.Database, log *zap.Logger) BookingRepository {
	return &mongoBookingRepository{
		coll: db.Collection(bookingCollection),
		log:  log.With(zap.String("repository", "booking"), zap.String("driver", DriverMongo)),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	doc := bookingDocument{
		ID:                   primitive.NewObjectID(),
		ServiceProviderEmail: booking.ServiceProviderEmail,
		BuyerEmail:           booking.BuyerEmail,
		ServiceName:          booking.ServiceName,
		ServiceImage:         booking.ServiceImage,
		ServicePrice:         booking.ServicePrice.Native(),
		ServiceTakingDate:    booking.ServiceTakingDate,
		Message:              booking.Message,
		Status:               booking.Status,
		CreatedAt:            booking.CreatedAt,
		UpdatedAt:            booking.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("buyer_email", utils.MaskEmail(booking.BuyerEmail)),
			zap.String("service_name", booking.ServiceName),
		)
		return fmt.Errorf("create booking for %s: %w", utils.MaskEmail(booking.BuyerEmail), err)
	}

	booking.ID = doc.ID.Hex()
	return nil
}

func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, invalidID(id, err)
	}

	var doc bookingDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *mongoBookingRepository) FindByBuyerEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	bookings, err := r.find(ctx, bson.M{"buyerEmail": email})
	if err != nil {
		r.log.Error("Failed to find bookings by buyer",
			zap.Error(err),
			zap.String("buyer_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find bookings by buyer %s: %w", utils.MaskEmail(email), err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) FindByProviderEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	bookings, err := r.find(ctx, bson.M{"serviceProviderEmail": email})
	if err != nil {
		r.log.Error("Failed to find bookings by provider",
			zap.Error(err),
			zap.String("provider_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find bookings by provider %s: %w", utils.MaskEmail(email), err)
	}

	return bookings, nil
}

func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return invalidID(id, err)
	}

	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", status),
		)
		return fmt.Errorf("update booking status %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return invalidID(id, err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id))
	return nil
}

func (r *mongoBookingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	bookings := make([]*entity.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, docs[i].toEntity())
	}
	return bookings, nil
}
