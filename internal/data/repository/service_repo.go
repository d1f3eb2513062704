package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/database"
	"tour-sport/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ServiceRepository is the storage capability behind the service handlers.
type ServiceRepository interface {
	// Create assigns service.ID.
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	// FindAll matches search as a case-insensitive substring of the name; empty matches all.
	FindAll(ctx context.Context, search string) ([]*entity.Service, error)
	FindByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error)
	// Update overwrites every mutable field and returns the number of matched records.
	Update(ctx context.Context, service *entity.Service) (int64, error)
	Delete(ctx context.Context, id string) error
}

const serviceColumns = `id::text, provider_name, provider_email, provider_location, provider_image,
		name, price, image, area, description, created_at, updated_at`

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	query := `
		INSERT INTO services (id, provider_name, provider_email, provider_location, provider_image,
		                      name, price, image, area, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	service.ID = utils.GenerateUUIDString()
	_, err := r.db.Exec(ctx, query,
		service.ID,
		service.ProviderName,
		service.ProviderEmail,
		service.ProviderLocation,
		service.ProviderImage,
		service.Name,
		service.Price,
		service.Image,
		service.Area,
		service.Description,
		service.CreatedAt,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create service",
			zap.Error(err),
			zap.String("name", service.Name),
			zap.String("provider_email", utils.MaskEmail(service.ProviderEmail)),
		)
		return fmt.Errorf("create service %s: %w", service.Name, err)
	}

	return nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	serviceID, err := utils.ParseUUID(id)
	if err != nil {
		return nil, invalidID(id, err)
	}

	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	service, err := scanService(r.db.QueryRow(ctx, query, serviceID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id, err)
	}

	return service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, search string) ([]*entity.Service, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + serviceColumns + ` FROM services`)

	args := []interface{}{}
	if search != "" {
		queryBuilder.WriteString(` WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'`)
		args = append(args, escapeLike(search))
	}
	queryBuilder.WriteString(" ORDER BY created_at, id")

	services, err := r.queryServices(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all services",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find all services: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) FindByProviderEmail(ctx context.Context, email string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE provider_email = $1 ORDER BY created_at, id`

	services, err := r.queryServices(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find services by provider",
			zap.Error(err),
			zap.String("provider_email", utils.MaskEmail(email)),
		)
		return nil, fmt.Errorf("find services by provider %s: %w", utils.MaskEmail(email), err)
	}

	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) (int64, error) {
	serviceID, err := utils.ParseUUID(service.ID)
	if err != nil {
		return 0, invalidID(service.ID, err)
	}

	query := `
		UPDATE services
		SET provider_name = $2, provider_email = $3, provider_location = $4, provider_image = $5,
		    name = $6, price = $7, image = $8, area = $9, description = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		serviceID,
		service.ProviderName,
		service.ProviderEmail,
		service.ProviderLocation,
		service.ProviderImage,
		service.Name,
		service.Price,
		service.Image,
		service.Area,
		service.Description,
		service.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update service",
			zap.Error(err),
			zap.String("service_id", service.ID),
		)
		return 0, fmt.Errorf("update service %s: %w", service.ID, err)
	}

	return result.RowsAffected(), nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	serviceID, err := utils.ParseUUID(id)
	if err != nil {
		return invalidID(id, err)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, serviceID)
	if err != nil {
		r.log.Error("Failed to delete service",
			zap.Error(err),
			zap.String("service_id", id),
		)
		return fmt.Errorf("delete service %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id))
	return nil
}

func (r *serviceRepository) queryServices(ctx context.Context, query string, args ...any) ([]*entity.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*entity.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var service entity.Service
	err := row.Scan(
		&service.ID,
		&service.ProviderName,
		&service.ProviderEmail,
		&service.ProviderLocation,
		&service.ProviderImage,
		&service.Name,
		&service.Price,
		&service.Image,
		&service.Area,
		&service.Description,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// escapeLike makes %, _ and \ literal inside an ILIKE pattern using '\' as escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
