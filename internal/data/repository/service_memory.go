package repository

import (
	"context"
	"fmt"
	"strings"

	"tour-sport/internal/data/entity"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

var _ ServiceRepository = (*memoryServiceRepository)(nil)

type memoryServiceRepository struct {
	table *memTable[entity.Service]
	log   *zap.Logger
}

func NewMemoryServiceRepository(log *zap.Logger) ServiceRepository {
	return &memoryServiceRepository{
		table: newMemTable[entity.Service](),
		log:   log.With(zap.String("repository", "service"), zap.String("driver", DriverMemory)),
	}
}

func (r *memoryServiceRepository) Create(_ context.Context, service *entity.Service) error {
	service.ID = utils.GenerateUUIDString()
	r.table.insert(service.ID, *service)
	return nil
}

func (r *memoryServiceRepository) FindByID(_ context.Context, id string) (*entity.Service, error) {
	key, err := memKey(id)
	if err != nil {
		return nil, err
	}

	service, ok := r.table.get(key)
	if !ok {
		return nil, fmt.Errorf("service %s: %w", id, ErrNotFound)
	}
	return &service, nil
}

func (r *memoryServiceRepository) FindAll(_ context.Context, search string) ([]*entity.Service, error) {
	needle := strings.ToLower(search)
	return toPointers(r.table.filter(func(s entity.Service) bool {
		return strings.Contains(strings.ToLower(s.Name), needle)
	})), nil
}

func (r *memoryServiceRepository) FindByProviderEmail(_ context.Context, email string) ([]*entity.Service, error) {
	return toPointers(r.table.filter(func(s entity.Service) bool {
		return s.ProviderEmail == email
	})), nil
}

func (r *memoryServiceRepository) Update(_ context.Context, service *entity.Service) (int64, error) {
	key, err := memKey(service.ID)
	if err != nil {
		return 0, err
	}

	updated := r.table.update(key, func(stored *entity.Service) {
		createdAt := stored.CreatedAt
		*stored = *service
		stored.ID = key
		stored.CreatedAt = createdAt
	})
	if !updated {
		return 0, nil
	}
	return 1, nil
}

func (r *memoryServiceRepository) Delete(_ context.Context, id string) error {
	key, err := memKey(id)
	if err != nil {
		return err
	}

	if !r.table.remove(key) {
		return fmt.Errorf("service %s: %w", id, ErrNotFound)
	}

	r.log.Info("Service deleted", zap.String("service_id", id))
	return nil
}

func toPointers[T any](rows []T) []*T {
	out := make([]*T, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out
}
