package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salondesk/config"
	"salondesk/internal/domain/entity"
	"salondesk/internal/domain/repository"
	"salondesk/internal/domain/service"
	"salondesk/internal/infra/auth"
	"salondesk/internal/infra/persistence/sqlite"
	"salondesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// serviceFixtures wires the use cases against a real in-memory store so the
// tests exercise the whole stack below the interfaces.
type serviceFixtures struct {
	sessions  usecase.SessionUsecase
	customers usecase.CustomerUsecase
	staff     usecase.StaffUsecase

	staffRepo repository.StaffRepository
	hasher    service.PasswordHasher
	cfg       *config.Config
}

func createTestServices(t *testing.T) *serviceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SQLite.Path = ":memory:"
	cfg.SecretKey.Session = "test-session-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	staffRepo := sqlite.NewStaffRepository(db)
	customerRepo := sqlite.NewCustomerRepository(db)
	txManager := sqlite.NewTransactionManager(db)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return &serviceFixtures{
		sessions:  NewSessionService(staffRepo, txManager, hasher, tokens, logger),
		customers: NewCustomerService(customerRepo, txManager, logger),
		staff:     NewStaffService(staffRepo, txManager, hasher, cfg, logger),
		staffRepo: staffRepo,
		hasher:    hasher,
		cfg:       cfg,
	}
}

// seedStaff inserts a staff record directly, bypassing the access gate, so a
// test can establish its starting population.
func (f *serviceFixtures) seedStaff(t *testing.T, email, password string, isAdmin bool) *entity.Staff {
	t.Helper()

	digest, err := f.hasher.Hash(password)
	require.NoError(t, err)

	staff := &entity.Staff{
		FirstName:      "Seed",
		LastName:       "Member",
		Email:          email,
		PasswordDigest: digest,
		IsAdmin:        isAdmin,
	}
	require.NoError(t, f.staffRepo.Create(context.Background(), staff))

	return staff
}

// sessionFor builds an in-memory session for the given staff record without
// going through Login.
func sessionFor(staff *entity.Staff) *entity.Session {
	return &entity.Session{
		ID:         uuid.New(),
		StaffID:    staff.ID,
		Name:       staff.FullName(),
		IsAdmin:    staff.IsAdmin,
		LoggedInAt: time.Now(),
	}
}

func validCustomerInput() *usecase.CustomerInput {
	return &usecase.CustomerInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PhoneNumber:     "07123 456789",
		ServiceType:     entity.ServiceHaircut,
		AppointmentDate: "15/03/2024",
	}
}
