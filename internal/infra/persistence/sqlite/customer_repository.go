package sqlite

import (
	"context"
	"sort"

	"salondesk/internal/domain/entity"
	domainerrors "salondesk/internal/domain/errors"
	"salondesk/internal/domain/repository"
	"salondesk/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the repository as a domain.CustomerRepository interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Create persists a new customer record. The store assigns the id and the
// record always starts active.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.ID = 0
	customerM.IsActive = true

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.IsActive = customerM.IsActive
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a customer by id regardless of the active flag.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// Update modifies the mutable fields of an existing record. The id and the
// active flag are deliberately excluded from the update set.
func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	res := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"first_name":       customer.FirstName,
			"last_name":        customer.LastName,
			"email":            nullableString(customer.Email),
			"phone_number":     nullableString(customer.PhoneNumber),
			"service_type":     customer.ServiceType.String(),
			"appointment_date": customer.AppointmentDate,
		})
	if res.Error != nil {
		if isNotNullConstraintViolation(res.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to update customer")
	}
	if res.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// SoftDelete marks the record inactive. Re-deleting an inactive record is a
// no-op, not an error; only a never-assigned id is reported as missing.
func (repo *customerRepository) SoftDelete(ctx context.Context, id int64) error {
	res := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to soft-delete customer")
	}
	if res.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// Search returns active customers matching the query as a case-insensitive
// substring of name, email or phone. Ordering is by appointment date
// ascending; dates are stored in their canonical DD/MM/YYYY form, which does
// not sort chronologically as text, so the ordering is applied after mapping.
func (repo *customerRepository) Search(ctx context.Context, query string) ([]*entity.Customer, error) {
	var customerMs []*model.CustomerModel

	tx := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if query != "" {
		pattern := "%" + query + "%"
		tx = tx.Where(
			"first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone_number LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := tx.Order("id").Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for _, customerM := range customerMs {
		customers = append(customers, toCustomerDomain(customerM))
	}

	sortByAppointment(customers)

	return customers, nil
}

// sortByAppointment orders records by appointment date ascending with undated
// records last; ties fall back to id so the order is deterministic for a
// given snapshot.
func sortByAppointment(customers []*entity.Customer) {
	sort.SliceStable(customers, func(i, j int) bool {
		ti, iOK := customers[i].Appointment()
		tj, jOK := customers[j].Appointment()

		switch {
		case iOK && jOK && !ti.Equal(tj):
			return ti.Before(tj)
		case iOK != jOK:
			return iOK
		default:
			return customers[i].ID < customers[j].ID
		}
	})
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           stringValue(data.Email),
		PhoneNumber:     stringValue(data.PhoneNumber),
		ServiceType:     entity.ServiceType(data.ServiceType),
		AppointmentDate: data.AppointmentDate,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel for persistence.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:              data.ID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           nullableString(data.Email),
		PhoneNumber:     nullableString(data.PhoneNumber),
		ServiceType:     data.ServiceType.String(),
		AppointmentDate: data.AppointmentDate,
		IsActive:        data.IsActive,
	}
}

// nullableString maps an empty string to NULL so optional columns with unique
// indexes never collide on "".
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
