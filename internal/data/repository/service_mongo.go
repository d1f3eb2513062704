package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const serviceCollection = "service"

// serviceDocument keeps the field names the web client already stores.
// Price holds whatever type the client sent, so older string prices still decode.
type serviceDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	ProviderName     string             `bson:"serviceProviderName"`
	ProviderEmail    string             `bson:"serviceProviderEmail"`
	ProviderLocation string             `bson:"serviceProviderLocation"`
	ProviderImage    string             `bson:"serviceProviderImage"`
	Name             string             `bson:"serviceName"`
	Price            any                `bson:"servicePrice"`
	Image            string             `bson:"serviceImage"`
	Area             string             `bson:"serviceArea"`
	Description      string             `bson:"serviceDsc"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func (d *serviceDocument) toEntity() *entity.Service {
	return &entity.Service{
		Base: entity.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		ProviderName:     d.ProviderName,
		ProviderEmail:    d.ProviderEmail,
		ProviderLocation: d.ProviderLocation,
		ProviderImage:    d.ProviderImage,
		Name:             d.Name,
		Price:            entity.PriceOf(d.Price),
		Image:            d.Image,
		Area:             d.Area,
		Description:      d.Description,
	}
}

type mongoServiceRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewMongoServiceRepository(db *mongo.Database, log *zap.Logger) ServiceRepository {
	return &mongoServiceRepository{
		coll: db.Collection(serviceCollection),
		log:  log.With(zap.String("repository", "service"), zap.String("driver", DriverMongo)),
	}
}

func (r *mongoServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	doc := serviceDocument{
		ID:               primitive.NewObjectID(),
		ProviderName:     service.ProviderName,
		ProviderEmail:    service.ProviderEmail,
		ProviderLocation: service.ProviderLocation,
		ProviderImage:    service.ProviderImage,
		Name:             service.Name,
		Price:            service.Price.Native(),
		Image:            service.Image,
		Area:             service.Area,
		Description:      service.Description,
		CreatedAt:        service.CreatedAt,
		UpdatedAt:        service.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
			zap.String("provider_email", utils.MaskEmail(service.ProviderEmail)),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	service.ID = doc.ID.Hex()
	return nil
}

func (r *mongoServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, invalidID(id, err)
	}

	var doc serviceDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return doc.toEntity(), nil
}

func (r *mongoServiceRepository) FindAll(ctx context.Context, search string) ([]*entity.Service, error) {
	filter := bson.M{}
	if search != "" {
		filter["serviceName"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(search),
			Options: "i",
		}}
	}

	services, err := r.find(ctx, filter)
	if err != nil {
		r.log.Error("Failed to find all services",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find all services: %w", err)
	}

	return services, nil
}

func (r *mongoServiceRepository) FindByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error) {
	services, err := r.find(ctx, bson.M{"serviceProviderEmail": email})
	if err != nil {
		r.log.Error("Failed to find services by provider",
			zap.Error(err),
			zap.String("provider_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find services by provider %s: %w", utils.MaskEmail(email), err)
	}

	return services, nil
}

func (r *mongoServiceRepository) Update(ctx context.Context, service *entity.Service) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(service.ID)
	if err != nil {
		return 0, invalidID(service.ID, err)
	}

	update := bson.M{"$set": bson.M{
		"serviceProviderName":     service.ProviderName,
		"serviceProviderEmail":    service.ProviderEmail,
		"serviceProviderLocation": service.ProviderLocation,
		"serviceProviderImage":    service.ProviderImage,
		"serviceName":             service.Name,
		"servicePrice":            service.Price.Native(),
		"serviceImage":            service.Image,
		"serviceArea":             service.Area,
		"serviceDsc":              service.Description,
		"updatedAt":               service.UpdatedAt,
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID),
		)
		return 0, fmt.Errorf("update service %s: %w", service.ID, err)
	}

	return result.MatchedCount, nil
}

func (r *mongoServiceRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return invalidID(id, err)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id),
		)
		return fmt.Errorf("delete service %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id))
	return nil
}

func (r *mongoServiceRepository) find(ctx context.Context, filter bson.M) ([]*entity.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []serviceDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}

	services := make([]*entity.Service, 0, len(docs))
	for i := range docs {
		services = append(services, docs[i].toEntity())
	}
	return services, nil
}
