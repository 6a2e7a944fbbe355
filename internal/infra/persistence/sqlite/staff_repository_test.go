package sqlite

import (
	"context"
	"testing"
	"time"

	"salondesk/internal/domain/entity"
	"salondesk/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaff(first, last, email, phone string) *entity.Staff {
	return &entity.Staff{
		FirstName:      first,
		LastName:       last,
		Email:          email,
		PhoneNumber:    phone,
		PasswordDigest: "$2a$04$fakedigestfortestingonlyabcdefghijklmnopqrstuv",
	}
}

func TestStaffRepository_CreateAndFind(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	staff := newStaff("Jane", "Doe", "jane@example.com", "07123 456789")
	staff.IsAdmin = true

	require.NoError(t, repo.Create(ctx, staff))
	assert.Positive(t, staff.ID)
	assert.True(t, staff.IsActive)

	found, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", found.Email)
	assert.True(t, found.IsAdmin)
	assert.Nil(t, found.LastLogin)
}

func TestStaffRepository_EmailUniqueness(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStaff("Jane", "Doe", "jane@example.com", "")))

	err := repo.Create(ctx, newStaff("Janet", "Doherty", "jane@example.com", ""))
	assert.True(t, errors.Is(err, repository.ErrEmailTaken))
}

func TestStaffRepository_PhoneUniqueness(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStaff("Jane", "Doe", "jane@example.com", "07123 456789")))

	err := repo.Create(ctx, newStaff("John", "Smith", "john@example.com", "07123 456789"))
	assert.True(t, errors.Is(err, repository.ErrPhoneTaken))
}

func TestStaffRepository_EmptyPhonesDoNotCollide(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStaff("Jane", "Doe", "jane@example.com", "")))
	require.NoError(t, repo.Create(ctx, newStaff("John", "Smith", "john@example.com", "")))
}

func TestStaffRepository_UniquenessSpansSoftDeletedRows(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	jane := newStaff("Jane", "Doe", "jane@example.com", "07123 456789")
	require.NoError(t, repo.Create(ctx, jane))
	require.NoError(t, repo.SoftDelete(ctx, jane.ID))

	// The soft-deleted row still occupies the unique indexes.
	err := repo.Create(ctx, newStaff("Janet", "Doherty", "jane@example.com", ""))
	assert.True(t, errors.Is(err, repository.ErrEmailTaken))

	err = repo.Create(ctx, newStaff("John", "Smith", "john@example.com", "07123 456789"))
	assert.True(t, errors.Is(err, repository.ErrPhoneTaken))
}

func TestStaffRepository_UpdateKeepsDigestAndActiveFlag(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	staff := newStaff("Jane", "Doe", "jane@example.com", "")
	require.NoError(t, repo.Create(ctx, staff))
	originalDigest := staff.PasswordDigest

	staff.FirstName = "Janet"
	staff.IsAdmin = true
	staff.PasswordDigest = "should-be-ignored"
	require.NoError(t, repo.Update(ctx, staff))

	found, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "Janet", found.FirstName)
	assert.True(t, found.IsAdmin)
	assert.Equal(t, originalDigest, found.PasswordDigest)
	assert.True(t, found.IsActive)
}

func TestStaffRepository_UpdateCollidingEmail(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newStaff("Jane", "Doe", "jane@example.com", "")))

	john := newStaff("John", "Smith", "john@example.com", "")
	require.NoError(t, repo.Create(ctx, john))

	john.Email = "jane@example.com"
	err := repo.Update(ctx, john)
	assert.True(t, errors.Is(err, repository.ErrEmailTaken))
}

func TestStaffRepository_ListIDsSkipsInactive(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	jane := newStaff("Jane", "Doe", "jane@example.com", "")
	require.NoError(t, repo.Create(ctx, jane))

	john := newStaff("John", "Smith", "john@example.com", "")
	require.NoError(t, repo.Create(ctx, john))
	require.NoError(t, repo.SoftDelete(ctx, john.ID))

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{jane.ID}, ids)
}

func TestStaffRepository_UpdatePassword(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	staff := newStaff("Jane", "Doe", "jane@example.com", "")
	require.NoError(t, repo.Create(ctx, staff))

	require.NoError(t, repo.UpdatePassword(ctx, staff.ID, "new-digest"))

	found, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-digest", found.PasswordDigest)

	err = repo.UpdatePassword(ctx, 999, "whatever")
	assert.True(t, errors.Is(err, repository.ErrStaffNotFound))
}

func TestStaffRepository_UpdateLastLogin(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	staff := newStaff("Jane", "Doe", "jane@example.com", "")
	require.NoError(t, repo.Create(ctx, staff))

	stamp := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, staff.ID, stamp))

	found, err := repo.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLogin)
	assert.True(t, found.LastLogin.Equal(stamp))
}

func TestStaffRepository_SearchSkipsInactive(t *testing.T) {
	repo := NewStaffRepository(newTestDB(t))
	ctx := context.Background()

	jane := newStaff("Jane", "Doe", "jane@example.com", "")
	require.NoError(t, repo.Create(ctx, jane))

	john := newStaff("John", "Smith", "john@example.com", "")
	require.NoError(t, repo.Create(ctx, john))
	require.NoError(t, repo.SoftDelete(ctx, john.ID))

	results, err := repo.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, jane.ID, results[0].ID)
}
