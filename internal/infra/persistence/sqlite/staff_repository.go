package sqlite

import (
	"context"
	"time"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/repository"
	"salondesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// staffRepository implements the domain.StaffRepository interface using GORM.
type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository is the constructor for staffRepository.
func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

// Create persists a new staff record. The unique indexes on email and phone
// cover soft-deleted rows as well, so a collision with an inactive record
// still fails.
func (repo *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	staffM := fromStaffDomain(staff)
	staffM.ID = 0
	staffM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(staffM).Error; err != nil {
		if mapped := mapStaffConstraintError(err); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create staff")
	}

	staff.ID = staffM.ID
	staff.IsActive = staffM.IsActive
	staff.CreatedAt = staffM.CreatedAt
	staff.UpdatedAt = staffM.UpdatedAt

	return nil
}

// FindByID retrieves a staff record by id regardless of the active flag.
func (repo *staffRepository) FindByID(ctx context.Context, id int64) (*entity.Staff, error) {
	var staffM model.StaffModel

	err := repo.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staffM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStaffNotFound
		}

		return nil, errors.Wrap(err, "failed to find staff by id")
	}

	return toStaffDomain(&staffM), nil
}

// Update modifies the mutable profile fields. The id, active flag and
// password digest are deliberately excluded from the update set.
func (repo *staffRepository) Update(ctx context.Context, staff *entity.Staff) error {
	res := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", staff.ID).
		Updates(map[string]any{
			"first_name":   staff.FirstName,
			"last_name":    staff.LastName,
			"email":        staff.Email,
			"phone_number": nullableString(staff.PhoneNumber),
			"is_admin":     staff.IsAdmin,
		})
	if res.Error != nil {
		if mapped := mapStaffConstraintError(res.Error); mapped != nil {
			return mapped
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update staff")
	}
	if res.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// SoftDelete marks the record inactive. Idempotent for existing ids.
func (repo *staffRepository) SoftDelete(ctx context.Context, id int64) error {
	res := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to soft-delete staff")
	}
	if res.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// Search returns active staff matching the query as a case-insensitive
// substring of name, email or phone, in insertion (id) order.
func (repo *staffRepository) Search(ctx context.Context, query string) ([]*entity.Staff, error) {
	var staffMs []*model.StaffModel

	tx := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone_number LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := tx.Order("staff_id").Find(&staffMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search staff")
	}

	staff := make([]*entity.Staff, 0, len(staffMs))
	for _, staffM := range staffMs {
		staff = append(staff, toStaffDomain(staffM))
	}

	return staff, nil
}

// ListIDs returns the ids of all active staff in ascending order.
func (repo *staffRepository) ListIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	err := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("is_active = ?", true).
		Order("staff_id").
		Pluck("staff_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff ids")
	}

	return ids, nil
}

// UpdatePassword replaces the stored digest wholesale.
func (repo *staffRepository) UpdatePassword(ctx context.Context, id int64, digest string) error {
	res := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", id).
		Update("password_digest", digest)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update staff password")
	}
	if res.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// UpdateLastLogin stamps the record's last_login.
func (repo *staffRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	res := repo.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("staff_id = ?", id).
		Update("last_login", at)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update last login")
	}
	if res.RowsAffected == 0 {
		return repository.ErrStaffNotFound
	}

	return nil
}

// mapStaffConstraintError converts SQLite constraint failures into the
// domain's persistence errors; nil means the error was something else.
func mapStaffConstraintError(err error) error {
	switch {
	case isUniqueViolationOn(err, "staff", "email"):
		return repository.ErrEmailTaken
	case isUniqueViolationOn(err, "staff", "phone_number"):
		return repository.ErrPhoneTaken
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConstraintViolation.WrapMessage("staff unique field collision")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("missing required staff information")
	default:
		return nil
	}
}

// --- Mapper Functions ---

// toStaffDomain converts a GORM StaffModel to a domain Staff entity.
func toStaffDomain(data *model.StaffModel) *entity.Staff {
	if data == nil {
		return nil
	}

	return &entity.Staff{
		ID:             data.ID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		PhoneNumber:    stringValue(data.PhoneNumber),
		PasswordDigest: data.PasswordDigest,
		IsAdmin:        data.IsAdmin,
		IsActive:       data.IsActive,
		LastLogin:      data.LastLogin,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromStaffDomain converts a domain Staff entity to a GORM StaffModel for persistence.
func fromStaffDomain(data *entity.Staff) *model.StaffModel {
	if data == nil {
		return nil
	}

	return &model.StaffModel{
		ID:             data.ID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		PhoneNumber:    nullableString(data.PhoneNumber),
		PasswordDigest: data.PasswordDigest,
		IsAdmin:        data.IsAdmin,
		IsActive:       data.IsActive,
		LastLogin:      data.LastLogin,
	}
}
