package impl

import (
	"context"
	"log/slog"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/repository"
	"salondesk/internal/usecase"
	"salondesk/internal/validate"

	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// requireAuthenticated rejects anonymous callers before any store access.
func requireAuthenticated(session *entity.Session) error {
	if !session.Authenticated() {
		return domainerrors.ErrAccessDenied.WrapMessage("login required")
	}

	return nil
}

// Add validates the input and persists a new active customer record.
func (srv *customerService) Add(ctx context.Context, session *entity.Session, input *usecase.CustomerInput) (*entity.Customer, error) {
	if err := requireAuthenticated(session); err != nil {
		return nil, err
	}

	if err := validate.Customer(input.FirstName, input.LastName, input.Email, input.PhoneNumber, input.ServiceType, input.AppointmentDate); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		ServiceType:     input.ServiceType,
		AppointmentDate: input.AppointmentDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Create(ctx, customer); err != nil {
			return errors.Wrap(err, "failed to create customer")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to add customer", slog.Any("error", err), slog.Int64("staff_id", session.StaffID))

		return nil, errors.Wrap(err, "failed to add customer")
	}

	srv.logger.Info("Customer added", slog.Int64("customer_id", customer.ID), slog.Int64("staff_id", session.StaffID))

	return customer, nil
}

// Update validates the input and rewrites the record's mutable fields.
func (srv *customerService) Update(ctx context.Context, session *entity.Session, id int64, input *usecase.CustomerInput) (*entity.Customer, error) {
	if err := requireAuthenticated(session); err != nil {
		return nil, err
	}

	if err := validate.Customer(input.FirstName, input.LastName, input.Email, input.PhoneNumber, input.ServiceType, input.AppointmentDate); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:              id,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		ServiceType:     input.ServiceType,
		AppointmentDate: input.AppointmentDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().Update(ctx, customer); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrRecordNotFound.WrapMessage("customer not found")
			}

			return errors.Wrap(err, "failed to update customer")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to update customer", slog.Any("error", err), slog.Int64("customer_id", id), slog.Int64("staff_id", session.StaffID))

		return nil, errors.Wrap(err, "failed to update customer")
	}

	srv.logger.Info("Customer updated", slog.Int64("customer_id", id), slog.Int64("staff_id", session.StaffID))

	return customer, nil
}

// SoftDelete marks the record inactive; the row is never purged.
func (srv *customerService) SoftDelete(ctx context.Context, session *entity.Session, id int64) error {
	if err := requireAuthenticated(session); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.CustomerRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrRecordNotFound.WrapMessage("customer not found")
			}

			return errors.Wrap(err, "failed to find customer")
		}

		if err := repo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to soft delete customer")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to soft delete customer", slog.Any("error", err), slog.Int64("customer_id", id), slog.Int64("staff_id", session.StaffID))

		return errors.Wrap(err, "failed to soft delete customer")
	}

	srv.logger.Info("Customer soft deleted", slog.Int64("customer_id", id), slog.Int64("staff_id", session.StaffID))

	return nil
}

// Search returns the active records matching the query. Reads are open; the
// booking screen shows the table before anyone logs in.
func (srv *customerService) Search(ctx context.Context, query string) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.Search(ctx, query)
	if err != nil {
		srv.logger.Error("Failed to search customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search customers")
	}

	return customers, nil
}

// Get returns the record regardless of its active flag.
func (srv *customerService) Get(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage("customer not found")
		}

		srv.logger.Error("Failed to get customer", slog.Any("error", err), slog.Int64("customer_id", id))

		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}
