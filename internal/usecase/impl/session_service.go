// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/repository"
	"salondesk/internal/domain/service"
	"salondesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	staffRepo repository.StaffRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	staffRepo repository.StaffRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		staffRepo: staffRepo,
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login authenticates a staff member and stamps their last_login. Unknown id,
// inactive record and wrong password all collapse into ErrInvalidCredentials
// so a caller cannot probe which staff ids exist.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Login attempt", slog.Int64("staff_id", input.StaffID))

	staff, err := srv.staffRepo.FindByID(ctx, input.StaffID)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
		}

		srv.logger.Error("Failed to load staff record for login", slog.Any("error", err), slog.Int64("staff_id", input.StaffID))

		return nil, errors.Wrap(err, "failed to load staff record")
	}

	if !staff.IsActive {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	// bcrypt comparison stays outside the transaction; it is CPU work, not IO.
	if !srv.hasher.Check(input.Password, staff.PasswordDigest) {
		srv.logger.Info("Login rejected", slog.Int64("staff_id", input.StaffID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login rejected")
	}

	now := time.Now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.StaffRepo().UpdateLastLogin(ctx, staff.ID, now); err != nil {
			return errors.Wrap(err, "failed to stamp last login")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to record login", slog.Any("error", err), slog.Int64("staff_id", staff.ID))

		return nil, errors.Wrap(err, "failed to record login")
	}

	session := &entity.Session{
		ID:         uuid.New(),
		StaffID:    staff.ID,
		Name:       staff.FullName(),
		IsAdmin:    staff.IsAdmin,
		LoggedInAt: now,
	}

	token, err := srv.tokens.Sign(session)
	if err != nil {
		srv.logger.Error("Failed to sign session token", slog.Any("error", err), slog.Int64("staff_id", staff.ID))

		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.logger.Info("Login succeeded",
		slog.Int64("staff_id", staff.ID),
		slog.Bool("is_admin", staff.IsAdmin),
		slog.Any("session_id", session.ID),
	)

	return &usecase.LoginOutput{Session: session, Token: token}, nil
}

// Resume rebuilds a session from a hand-off token issued by Login.
func (srv *sessionService) Resume(ctx context.Context, token string) (*entity.Session, error) {
	session, err := srv.tokens.Verify(token)
	if err != nil {
		srv.logger.Info("Session resume rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resume session")
	}

	srv.logger.Debug("Session resumed", slog.Int64("staff_id", session.StaffID), slog.Any("session_id", session.ID))

	return session, nil
}

// Logout ends a session. The token is stateless, so there is nothing to
// revoke server-side; the contract is that the caller discards both the
// session and the token.
func (srv *sessionService) Logout(ctx context.Context, session *entity.Session) error {
	if !session.Authenticated() {
		return nil
	}

	srv.logger.Info("Logout", slog.Int64("staff_id", session.StaffID), slog.Any("session_id", session.ID))

	return nil
}

// StaffIDs lists the active staff ids the login screen offers.
func (srv *sessionService) StaffIDs(ctx context.Context) ([]int64, error) {
	ids, err := srv.staffRepo.ListIDs(ctx)
	if err != nil {
		srv.logger.Error("Failed to list staff ids", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list staff ids")
	}

	return ids, nil
}
