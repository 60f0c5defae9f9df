package impl

import (
	"bytes"
	"context"
	"testing"

	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	mockSvc "washapp/internal/mocks/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var admin = entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

func createTestCatalogService(t *testing.T) (usecase.CatalogUsecase, repoFixtures, *mockSvc.MockBlobStore) {
	repos := newRepoFixtures(t)
	blobs := mockSvc.NewMockBlobStore(t)

	return NewCatalogService(CatalogServiceParams{
		TxManager:   repos.txManager,
		CatalogRepo: repos.catalogRepo,
		Blobs:       blobs,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}), repos, blobs
}

func TestCatalogService_WritesRequireAdmin(t *testing.T) {
	srv, _, _ := createTestCatalogService(t)
	ctx := context.Background()
	actor := customer()

	_, err := srv.CreateCategory(ctx, actor, &usecase.CreateCategoryInput{Name: "Exterior"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.CreateService(ctx, actor, &usecase.ServiceInput{Name: "Wash"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = srv.UploadServiceImage(ctx, actor, uuid.New(), &usecase.UploadInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateCategory_Duplicate(t *testing.T) {
	srv, fx, _ := createTestCatalogService(t)

	fx.catalogRepo.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(repository.ErrDuplicateCategory)

	_, err := srv.CreateCategory(context.Background(), admin, &usecase.CreateCategoryInput{Name: "Exterior"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestCatalogService_CreateService_DefaultsDuration(t *testing.T) {
	srv, fx, _ := createTestCatalogService(t)
	categoryID := uuid.New()

	fx.catalogRepo.EXPECT().FindCategoryByID(mock.Anything, categoryID).Return(&entity.ServiceCategory{ID: categoryID}, nil)
	fx.catalogRepo.EXPECT().
		CreateService(mock.Anything, mock.MatchedBy(func(s *entity.Service) bool {
			return s.Duration == entity.DefaultServiceDuration && s.Price.Equal(decimal.RequireFromString("19.99"))
		})).
		Return(nil)

	svc, err := srv.CreateService(context.Background(), admin, &usecase.ServiceInput{
		CategoryID: categoryID,
		Name:       "Basic wash",
		Price:      decimal.RequireFromString("19.99"),
		IsActive:   true,
	})

	require.NoError(t, err)
	assert.True(t, svc.IsActive)
}

func TestCatalogService_CreateService_Validation(t *testing.T) {
	srv, fx, _ := createTestCatalogService(t)

	_, err := srv.CreateService(context.Background(), admin, &usecase.ServiceInput{
		CategoryID: uuid.New(),
		Name:       "Wash",
		Price:      decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	missing := uuid.New()
	fx.catalogRepo.EXPECT().FindCategoryByID(mock.Anything, missing).Return(nil, repository.ErrCategoryNotFound)

	_, err = srv.CreateService(context.Background(), admin, &usecase.ServiceInput{CategoryID: missing, Name: "Wash"})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_ListServices_InactiveOnlyForAdmins(t *testing.T) {
	srv, fx, _ := createTestCatalogService(t)

	fx.catalogRepo.EXPECT().ListServices(mock.Anything, repository.ServiceFilter{ActiveOnly: true}).Return(nil, nil).Once()
	fx.catalogRepo.EXPECT().ListServices(mock.Anything, repository.ServiceFilter{ActiveOnly: false}).Return(nil, nil).Once()

	_, err := srv.ListServices(context.Background(), &usecase.ListServicesInput{IncludeInactive: true, Actor: customer()})
	require.NoError(t, err)

	_, err = srv.ListServices(context.Background(), &usecase.ListServicesInput{IncludeInactive: true, Actor: admin})
	require.NoError(t, err)
}

func TestCatalogService_UploadServiceImage(t *testing.T) {
	srv, fx, blobs := createTestCatalogService(t)
	svc := &entity.Service{ID: uuid.New(), Image: "services/old.gif"}
	key := "services/" + svc.ID.String() + ".png"

	fx.catalogRepo.EXPECT().FindServiceByID(mock.Anything, svc.ID).Return(svc, nil)
	blobs.EXPECT().Upload(mock.Anything, key, "image/png", mock.Anything).Return(nil)
	fx.catalogRepo.EXPECT().
		UpdateService(mock.Anything, mock.MatchedBy(func(s *entity.Service) bool { return s.Image == key })).
		Return(nil)
	blobs.EXPECT().Delete(mock.Anything, "services/old.gif").Return(nil)

	updated, err := srv.UploadServiceImage(context.Background(), admin, svc.ID, &usecase.UploadInput{
		ContentType: "image/png",
		Body:        bytes.NewReader([]byte("\x89PNG")),
	})

	require.NoError(t, err)
	assert.Equal(t, key, updated.Image)
}

func TestCatalogService_UploadServiceImage_Rejected(t *testing.T) {
	srv, _, _ := createTestCatalogService(t)

	_, err := srv.UploadServiceImage(context.Background(), admin, uuid.New(), &usecase.UploadInput{
		ContentType: "application/pdf",
		Body:        bytes.NewReader([]byte("%PDF")),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.UploadServiceImage(context.Background(), admin, uuid.New(), &usecase.UploadInput{
		ContentType: "image/png",
		Body:        bytes.NewReader(make([]byte, 2048)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
