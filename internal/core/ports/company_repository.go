package ports

import (
	"context"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
)

// CompanyRepository stores companies. Deleting a company deletes its jobs.
type CompanyRepository interface {
	Create(ctx context.Context, c *company.Company) (*company.Company, error)
	FindAll(ctx context.Context, filter company.Filter) ([]*company.Company, error)
	Get(ctx context.Context, handle kernel.Handle) (*company.Company, error)
	Update(ctx context.Context, handle kernel.Handle, patch company.Patch) (*company.Company, error)
	Delete(ctx context.Context, handle kernel.Handle) error
}
