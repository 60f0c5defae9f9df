package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "washapp/internal/delivery/context"
	"washapp/internal/domain/entity"
	domainerrors "washapp/internal/domain/errors"
	"washapp/internal/domain/repository"
	"washapp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerService struct {
	txManager    repository.TransactionManager
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

type ProviderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProviderRepo repository.ProviderRepository
	Logger       *slog.Logger
}

func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		txManager:    params.TxManager,
		providerRepo: params.ProviderRepo,
		logger:       params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the provider profile of a service_provider account. A second call fails.
func (srv *providerService) Register(ctx context.Context, actor entity.Actor, input *usecase.RegisterProviderInput) (*entity.ServiceProvider, error) {
	if !actor.IsProvider() {
		return nil, domainerrors.ErrForbidden.WithDetails("only service_provider accounts can register a provider profile")
	}

	companyName := strings.TrimSpace(input.CompanyName)
	if companyName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("company_name is required")
	}

	provider := &entity.ServiceProvider{
		UserID:      actor.UserID,
		CompanyName: companyName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		ServiceIDs:  input.ServiceIDs,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		_, err := providerRepo.FindByUserID(ctx, actor.UserID)
		if err == nil {
			return domainerrors.ErrProviderAlreadyExists
		}
		if !errors.Is(err, repository.ErrProviderNotFound) {
			return errors.Wrap(err, "failed to check existing provider profile")
		}

		if err := providerRepo.Create(ctx, provider); err != nil {
			return mapProviderWriteError(err)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Provider registration failed", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register provider")
	}

	srv.log(ctx).Info("Provider registered", slog.Any("providerID", provider.ID), slog.Int("services", len(provider.ServiceIDs)))

	return provider, nil
}

func (srv *providerService) GetMine(ctx context.Context, actor entity.Actor) (*entity.ServiceProvider, error) {
	if !actor.IsProvider() {
		return nil, domainerrors.ErrForbidden
	}

	provider, err := srv.providerRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, mapProviderReadError(err)
	}

	return provider, nil
}

// UpdateServices replaces the set of services the actor's provider profile offers.
func (srv *providerService) UpdateServices(ctx context.Context, actor entity.Actor, serviceIDs []uuid.UUID) (*entity.ServiceProvider, error) {
	if !actor.IsProvider() {
		return nil, domainerrors.ErrForbidden
	}

	var updated *entity.ServiceProvider
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		provider, err := providerRepo.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return mapProviderReadError(err)
		}

		if err := providerRepo.ReplaceServices(ctx, provider.ID, serviceIDs); err != nil {
			return mapProviderWriteError(err)
		}

		updated, err = providerRepo.FindByID(ctx, provider.ID)
		if err != nil {
			return mapProviderReadError(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offered services")
	}

	srv.log(ctx).Info("Provider services replaced", slog.Any("providerID", updated.ID), slog.Int("services", len(updated.ServiceIDs)))

	return updated, nil
}

func (srv *providerService) Get(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	provider, err := srv.providerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapProviderReadError(err)
	}

	return provider, nil
}

func (srv *providerService) SetVerified(ctx context.Context, actor entity.Actor, id uuid.UUID, verified bool) (*entity.ServiceProvider, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var updated *entity.ServiceProvider
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		providerRepo := repoFactory.ProviderRepo()

		if err := providerRepo.SetVerified(ctx, id, verified); err != nil {
			return mapProviderReadError(err)
		}

		var err error
		updated, err = providerRepo.FindByID(ctx, id)
		if err != nil {
			return mapProviderReadError(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to change provider verification")
	}

	srv.log(ctx).Info("Provider verification changed", slog.Any("providerID", id), slog.Bool("verified", verified))

	return updated, nil
}

func mapProviderReadError(err error) error {
	if errors.Is(err, repository.ErrProviderNotFound) {
		return domainerrors.ErrProviderNotFound
	}

	return errors.Wrap(err, "failed to load provider")
}

func mapProviderWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateProvider):
		return domainerrors.ErrProviderAlreadyExists
	case errors.Is(err, repository.ErrServiceNotFound):
		return domainerrors.ErrServiceNotFound.WithDetails("unknown service in service_ids")
	case errors.Is(err, repository.ErrProviderNotFound):
		return domainerrors.ErrProviderNotFound
	}

	return errors.Wrap(err, "failed to store provider")
}
