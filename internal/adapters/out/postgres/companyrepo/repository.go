package companyrepo

import (
	"context"
	"errors"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/sqlpatch"

	"gorm.io/gorm"
)

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create fails with errs.ErrObjectAlreadyExists when the handle or the name is taken.
func (r *GormCompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("company", dto.Handle, err)
		}
		return nil, errs.NewStoreError("create company", err)
	}

	return toDomain(dto)
}

// FindAll filters on a case-insensitive name substring and a head count
// range, ordered by name.
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter company.Filter) ([]*company.Company, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Model(&CompanyDTO{})
	if filter.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.MinEmployees != nil {
		tx = tx.Where("num_employees >= ?", *filter.MinEmployees)
	}
	if filter.MaxEmployees != nil {
		tx = tx.Where("num_employees <= ?", *filter.MaxEmployees)
	}

	var dtos []CompanyDTO
	if err := tx.Order("name").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreError("find companies", err)
	}

	companies := make([]*company.Company, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, handle kernel.Handle) (*company.Company, error) {
	if err := handle.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "handle = ?", handle.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("handle", handle.String())
		}
		return nil, errs.NewStoreError("get company", err)
	}

	return toDomain(dto)
}

// Update writes the fields set in patch. The SET clause comes from sqlpatch,
// which renames numEmployees and logoUrl to their columns.
func (r *GormCompanyRepository) Update(
	ctx context.Context, handle kernel.Handle, patch company.Patch,
) (*company.Company, error) {
	if err := handle.Validate(); err != nil {
		return nil, err
	}

	clause, err := sqlpatch.Build(patchFields(patch), columns)
	if err != nil {
		return nil, err
	}

	query := `UPDATE companies SET ` + clause.Assignments +
		` WHERE handle = ` + clause.NextPlaceholder() +
		` RETURNING handle, name, num_employees, description, logo_url`

	var dto CompanyDTO
	result := r.db.WithContext(ctx).Raw(query, clause.Args(handle.String())...).Scan(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, errs.NewObjectAlreadyExistsErrorWithCause("company", handle.String(), result.Error)
		}
		return nil, errs.NewStoreError("update company", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("handle", handle.String())
	}

	return toDomain(dto)
}

// Delete removes the company and, through the foreign key, its jobs.
func (r *GormCompanyRepository) Delete(ctx context.Context, handle kernel.Handle) error {
	if err := handle.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("handle = ?", handle.String()).Delete(&CompanyDTO{})
	if result.Error != nil {
		return errs.NewStoreError("delete company", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("handle", handle.String())
	}
	return nil
}
