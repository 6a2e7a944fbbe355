package impl

import (
	"context"
	"log/slog"

	"salondesk/config"
	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/repository"
	"salondesk/internal/domain/service"
	"salondesk/internal/usecase"
	"salondesk/internal/validate"

	"github.com/pkg/errors"
)

// staffService implements the StaffUsecase interface.
type staffService struct {
	staffRepo repository.StaffRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	cfg       *config.Config
	logger    *slog.Logger
}

// NewStaffService is the constructor for staffService.
func NewStaffService(
	staffRepo repository.StaffRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StaffUsecase {
	return &staffService{
		staffRepo: staffRepo,
		txManager: txManager,
		hasher:    hasher,
		cfg:       cfg,
		logger:    logger,
	}
}

// requireAdmin rejects anonymous and non-admin callers before any store access.
func requireAdmin(session *entity.Session) error {
	if !session.Authenticated() {
		return domainerrors.ErrAccessDenied.WrapMessage("login required")
	}
	if !session.Admin() {
		return domainerrors.ErrAccessDenied.WrapMessage("admin privilege required")
	}

	return nil
}

// checkNewPassword applies the strength policy and the confirmation match.
// Strength is checked first so a weak password is reported even when the
// confirmation also disagrees.
func checkNewPassword(password, confirm string) error {
	if err := validate.PasswordStrength(password); err != nil {
		return err
	}
	if password != confirm {
		return domainerrors.NewFieldError("confirm_password", "passwords do not match")
	}

	return nil
}

// mapStaffWriteError translates repository sentinels into domain errors.
func mapStaffWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrStaffNotFound):
		return domainerrors.ErrRecordNotFound.WrapMessage("staff not found")
	case errors.Is(err, repository.ErrEmailTaken):
		return domainerrors.ErrConstraintViolation.WithDetails("email").WrapMessage("staff email already exists")
	case errors.Is(err, repository.ErrPhoneTaken):
		return domainerrors.ErrConstraintViolation.WithDetails("phone_number").WrapMessage("staff phone number already exists")
	default:
		return err
	}
}

// Add validates the input, hashes the password and persists a new active
// staff record.
func (srv *staffService) Add(ctx context.Context, session *entity.Session, input *usecase.AddStaffInput) (*entity.Staff, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	if err := validate.Staff(input.FirstName, input.LastName, input.Email, input.PhoneNumber); err != nil {
		return nil, err
	}
	if err := checkNewPassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	staff := &entity.Staff{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		PasswordDigest: digest,
		IsAdmin:        input.IsAdmin,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StaffRepo().Create(ctx, staff); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to create staff")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to add staff", slog.Any("error", err), slog.Int64("staff_id", session.StaffID))

		return nil, errors.Wrap(err, "failed to add staff")
	}

	srv.logger.Info("Staff added",
		slog.Int64("new_staff_id", staff.ID),
		slog.Bool("is_admin", staff.IsAdmin),
		slog.Int64("staff_id", session.StaffID),
	)

	return staff, nil
}

// Update validates the input and rewrites the record's profile fields. The
// password digest is untouched; ChangePassword is the only path that replaces it.
func (srv *staffService) Update(ctx context.Context, session *entity.Session, id int64, input *usecase.UpdateStaffInput) (*entity.Staff, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	if err := validate.Staff(input.FirstName, input.LastName, input.Email, input.PhoneNumber); err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		ID:          id,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsAdmin:     input.IsAdmin,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StaffRepo().Update(ctx, staff); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to update staff")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to update staff", slog.Any("error", err), slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

		return nil, errors.Wrap(err, "failed to update staff")
	}

	srv.logger.Info("Staff updated", slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

	return staff, nil
}

// SoftDelete marks the record inactive. An admin deleting the record backing
// their own session is rejected before the store is touched.
func (srv *staffService) SoftDelete(ctx context.Context, session *entity.Session, id int64) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if id == session.StaffID {
		return domainerrors.ErrInvalidOperation.WrapMessage("cannot delete the logged-in staff record")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.StaffRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to find staff")
		}

		if err := repo.SoftDelete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to soft delete staff")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to soft delete staff", slog.Any("error", err), slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

		return errors.Wrap(err, "failed to soft delete staff")
	}

	srv.logger.Info("Staff soft deleted", slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

	return nil
}

// ChangePassword replaces the stored digest wholesale.
func (srv *staffService) ChangePassword(ctx context.Context, session *entity.Session, id int64, newPassword, confirm string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if err := checkNewPassword(newPassword, confirm); err != nil {
		return err
	}

	digest, err := srv.hasher.Hash(newPassword)
	if err != nil {
		srv.logger.Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.StaffRepo()

		if _, err := repo.FindByID(ctx, id); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to find staff")
		}

		if err := repo.UpdatePassword(ctx, id, digest); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to update password")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to change password", slog.Any("error", err), slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

		return errors.Wrap(err, "failed to change password")
	}

	srv.logger.Info("Password changed", slog.Int64("target_id", id), slog.Int64("staff_id", session.StaffID))

	return nil
}

// Search returns the active records matching the query. Staff records carry
// credential digests, so even reads are admin-only.
func (srv *staffService) Search(ctx context.Context, session *entity.Session, query string) ([]*entity.Staff, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	staff, err := srv.staffRepo.Search(ctx, query)
	if err != nil {
		srv.logger.Error("Failed to search staff", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search staff")
	}

	return staff, nil
}

// Get returns the record regardless of its active flag.
func (srv *staffService) Get(ctx context.Context, session *entity.Session, id int64) (*entity.Staff, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	staff, err := srv.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrRecordNotFound.WrapMessage("staff not found")
		}

		srv.logger.Error("Failed to get staff", slog.Any("error", err), slog.Int64("target_id", id))

		return nil, errors.Wrap(err, "failed to get staff")
	}

	return staff, nil
}

// EnsureSeedAdmin creates the configured initial admin account when no active
// admin exists. It runs at startup before any session exists and is the only
// write path that bypasses the access gate.
func (srv *staffService) EnsureSeedAdmin(ctx context.Context) error {
	seed := srv.cfg.Seed
	if seed == nil {
		srv.logger.Debug("No seed admin configured; skipping bootstrap")

		return nil
	}

	digest, err := srv.hasher.Hash(seed.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash seed password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.StaffRepo()

		active, err := repo.Search(ctx, "")
		if err != nil {
			return errors.Wrap(err, "failed to list staff")
		}
		for _, s := range active {
			if s.IsAdmin {
				return nil
			}
		}

		admin := &entity.Staff{
			FirstName:      seed.FirstName,
			LastName:       seed.LastName,
			Email:          seed.Email,
			PasswordDigest: digest,
			IsAdmin:        true,
		}
		if err := repo.Create(ctx, admin); err != nil {
			return errors.Wrap(mapStaffWriteError(err), "failed to create seed admin")
		}

		srv.logger.Info("Seed admin created", slog.Int64("new_staff_id", admin.ID), slog.String("email", admin.Email))

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to ensure seed admin", slog.Any("error", err))

		return errors.Wrap(err, "failed to ensure seed admin")
	}

	return nil
}
