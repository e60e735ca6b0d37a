// Package companyrepo stores companies in PostgreSQL through GORM.
package companyrepo

import (
	"fmt"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/sqlpatch"
)

// columns maps the API field names of a company patch to table columns.
var columns = sqlpatch.ColumnMap{
	company.FieldNumEmployees: "num_employees",
	company.FieldLogoURL:      "logo_url",
}

// CompanyDTO is the row shape of the companies table.
type CompanyDTO struct {
	Handle       string  `gorm:"column:handle;primaryKey;size:25"`
	Name         string  `gorm:"column:name;uniqueIndex;not null"`
	NumEmployees *int    `gorm:"column:num_employees"`
	Description  string  `gorm:"column:description;not null"`
	LogoURL      *string `gorm:"column:logo_url"`
}

func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(c *company.Company) CompanyDTO {
	return CompanyDTO{
		Handle:       c.Handle().String(),
		Name:         c.Name(),
		NumEmployees: c.NumEmployees(),
		Description:  c.Description(),
		LogoURL:      c.LogoURL(),
	}
}

// toDomain fails with a StoreError when a stored row breaks the domain rules.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	c, err := restore(dto)
	if err != nil {
		return nil, errs.NewStoreError("decode company", fmt.Errorf("company %q: %w", dto.Handle, err))
	}
	return c, nil
}

func restore(dto CompanyDTO) (*company.Company, error) {
	handle, err := kernel.NewHandle(dto.Handle)
	if err != nil {
		return nil, err
	}
	return company.RestoreCompany(handle, dto.Name, dto.Description, dto.NumEmployees, dto.LogoURL)
}

func patchFields(p company.Patch) sqlpatch.Fields {
	var fields sqlpatch.Fields
	p.Each(func(field string, value any) {
		fields = fields.Set(field, value)
	})
	return fields
}
