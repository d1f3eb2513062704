package usecase

import (
	"context"
	"errors"
	"testing"

	"tour-sport/internal/data/entity"
	"tour-sport/internal/data/repository"
	"tour-sport/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("store down")

// brokenServiceRepository fails every call.
type brokenServiceRepository struct{}

func (brokenServiceRepository) Create(context.Context, *entity.Service) error { return errStoreDown }
func (brokenServiceRepository) FindByID(context.Context, string) (*entity.Service, error) {
	return nil, errStoreDown
}
func (brokenServiceRepository) FindAll(context.Context, string) ([]*entity.Service, error) {
	return nil, errStoreDown
}
func (brokenServiceRepository) FindByProviderEmail(context.Context, string) ([]*entity.Service, error) {
	return nil, errStoreDown
}
func (brokenServiceRepository) Update(context.Context, *entity.Service) (int64, error) {
	return 0, errStoreDown
}
func (brokenServiceRepository) Delete(context.Context, string) error { return errStoreDown }

func cityTour(price float64) *request.ServiceRequest {
	return &request.ServiceRequest{
		ProviderName:  "Alice",
		ProviderEmail: "a@x.com",
		Name:          "City Tour",
		Price:         entity.NumberPrice(price),
		Area:          "Dhaka",
		Description:   "Three hours downtown",
	}
}

func TestCatalogService_CreateAndGet(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryServiceRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	inserted, err := catalog.CreateService(ctx, cityTour(100))
	require.NoError(t, err)
	require.NotEmpty(t, inserted.InsertedID)

	service, err := catalog.GetServiceByID(ctx, inserted.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, inserted.InsertedID, service.ID)
	assert.Equal(t, "City Tour", service.Name)
	assert.Equal(t, entity.NumberPrice(100), service.Price)
	assert.Equal(t, "Three hours downtown", service.Description)
	assert.False(t, service.CreatedAt.IsZero())
}

func TestCatalogService_GetServicesNeverNil(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryServiceRepository(zap.NewNop()), zap.NewNop())

	services, err := catalog.GetServices(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestCatalogService_UpdateOverwrites(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryServiceRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	inserted, err := catalog.CreateService(ctx, cityTour(100))
	require.NoError(t, err)

	updated, err := catalog.UpdateService(ctx, inserted.InsertedID, cityTour(150))
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.MatchedCount)

	service, err := catalog.GetServiceByID(ctx, inserted.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, entity.NumberPrice(150), service.Price)
}

func TestCatalogService_UpdateMissing(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryServiceRepository(zap.NewNop()), zap.NewNop())

	_, err := catalog.UpdateService(context.Background(), "00000000-0000-0000-0000-000000000001", cityTour(1))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_DeleteTwice(t *testing.T) {
	catalog := NewCatalogService(repository.NewMemoryServiceRepository(zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	inserted, err := catalog.CreateService(ctx, cityTour(100))
	require.NoError(t, err)

	deleted, err := catalog.DeleteService(ctx, inserted.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	_, err = catalog.DeleteService(ctx, inserted.InsertedID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_WrapsStoreErrors(t *testing.T) {
	catalog := NewCatalogService(brokenServiceRepository{}, zap.NewNop())
	ctx := context.Background()

	_, err := catalog.CreateService(ctx, cityTour(1))
	assert.ErrorIs(t, err, errStoreDown)

	_, err = catalog.GetServices(ctx, "")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = catalog.GetProviderServices(ctx, "a@x.com")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = catalog.UpdateService(ctx, "id", cityTour(1))
	assert.ErrorIs(t, err, errStoreDown)
}
