package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"washapp/config"
	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/domain/service"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager     repository.TransactionManager
	catalogRepo   repository.CatalogRepository
	blobs         service.BlobStore
	maxUploadSize int64
	logger        *slog.Logger
}

type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	Blobs       service.BlobStore
	Config      *config.Config
	Logger      *slog.Logger
}

func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:     params.TxManager,
		catalogRepo:   params.CatalogRepo,
		blobs:         params.Blobs,
		maxUploadSize: params.Config.Blob.MaxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return domainerrors.ErrForbidden.WithDetails("administrator role required")
	}

	return nil
}

func (srv *catalogService) CreateCategory(ctx context.Context, actor entity.Actor, input *usecase.CreateCategoryInput) (*entity.ServiceCategory, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category name is required")
	}

	category := &entity.ServiceCategory{Name: name, Description: input.Description}
	if err := srv.catalogRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrConflict.WithDetails("category name already exists")
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Service category created", slog.Any("categoryID", category.ID), slog.String("name", name))

	return category, nil
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	categories, err := srv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *catalogService) CreateService(ctx context.Context, actor entity.Actor, input *usecase.ServiceInput) (*entity.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	svc := &entity.Service{}
	if err := applyServiceInput(svc, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		if err := ensureCategory(ctx, catalogRepo, svc.CategoryID); err != nil {
			return err
		}

		if err := catalogRepo.CreateService(ctx, svc); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to create service")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog service")
	}

	srv.log(ctx).Info("Catalog service created", slog.Any("serviceID", svc.ID), slog.String("price", svc.Price.StringFixed(2)))

	return svc, nil
}

func (srv *catalogService) UpdateService(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.ServiceInput) (*entity.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *entity.Service
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.CatalogRepo()

		svc, err := findService(ctx, catalogRepo, id)
		if err != nil {
			return err
		}
		if err := applyServiceInput(svc, input); err != nil {
			return err
		}
		if err := ensureCategory(ctx, catalogRepo, svc.CategoryID); err != nil {
			return err
		}

		if err := catalogRepo.UpdateService(ctx, svc); err != nil {
			switch {
			case errors.Is(err, repository.ErrServiceNotFound):
				return domainerrors.ErrServiceNotFound
			case errors.Is(err, repository.ErrCategoryNotFound):
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to update service")
		}
		updated = svc

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update catalog service")
	}

	return updated, nil
}

// UploadServiceImage stores the image under services/<service id>.
func (srv *catalogService) UploadServiceImage(ctx context.Context, actor entity.Actor, id uuid.UUID, input *usecase.UploadInput) (*entity.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	data, ext, err := readImage(input, srv.maxUploadSize)
	if err != nil {
		return nil, err
	}

	svc, err := findService(ctx, srv.catalogRepo, id)
	if err != nil {
		return nil, err
	}

	key := "services/" + id.String() + ext
	if err := srv.blobs.Upload(ctx, key, input.ContentType, bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "failed to upload service image")
	}

	previous := svc.Image
	svc.Image = key
	if err := srv.catalogRepo.UpdateService(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to save service image")
	}

	if previous != "" && previous != key {
		if err := srv.blobs.Delete(ctx, previous); err != nil && !errors.Is(err, service.ErrBlobNotFound) {
			srv.log(ctx).Warn("Failed to delete replaced service image", slog.String("key", previous), slog.Any("error", err))
		}
	}

	return svc, nil
}

func (srv *catalogService) GetServiceImage(ctx context.Context, id uuid.UUID) (*usecase.Download, error) {
	svc, err := findService(ctx, srv.catalogRepo, id)
	if err != nil {
		return nil, err
	}
	if svc.Image == "" {
		return nil, domainerrors.ErrNotFound.WithDetails("service has no image")
	}

	return download(ctx, srv.blobs, svc.Image)
}

func (srv *catalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return findService(ctx, srv.catalogRepo, id)
}

// ListServices hides inactive services unless an administrator asks for them.
func (srv *catalogService) ListServices(ctx context.Context, input *usecase.ListServicesInput) ([]*entity.Service, error) {
	filter := repository.ServiceFilter{
		CategoryID: input.CategoryID,
		ActiveOnly: !(input.IncludeInactive && input.Actor.IsAdmin()),
	}

	services, err := srv.catalogRepo.ListServices(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func findService(ctx context.Context, catalogRepo repository.CatalogRepository, id uuid.UUID) (*entity.Service, error) {
	svc, err := catalogRepo.FindServiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

func ensureCategory(ctx context.Context, catalogRepo repository.CatalogRepository, id uuid.UUID) error {
	if _, err := catalogRepo.FindCategoryByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func applyServiceInput(svc *entity.Service, input *usecase.ServiceInput) error {
	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		return domainerrors.ErrValidationFailed.WithDetails("service name is required")
	case input.CategoryID == uuid.Nil:
		return domainerrors.ErrValidationFailed.WithDetails("category_id is required")
	case input.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case input.Duration < 0:
		return domainerrors.ErrValidationFailed.WithDetails("duration must not be negative")
	}

	svc.CategoryID = input.CategoryID
	svc.Name = name
	svc.Description = input.Description
	svc.Price = input.Price.Round(2)
	svc.Duration = input.Duration
	if svc.Duration == 0 {
		svc.Duration = entity.DefaultServiceDuration
	}
	svc.IsActive = input.IsActive

	return nil
}
