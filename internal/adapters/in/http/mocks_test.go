package http_test

import (
	"context"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Create(ctx context.Context, j *job.Job) (*job.Job, error) {
	args := m.Called(ctx, j)
	return jobOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter job.Filter) ([]*job.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) Get(ctx context.Context, id job.ID) (*job.Job, error) {
	args := m.Called(ctx, id)
	return jobOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, id job.ID, patch job.Patch) (*job.Job, error) {
	args := m.Called(ctx, id, patch)
	return jobOrNil(args.Get(0)), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id job.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepository) ListByCompany(ctx context.Context, handle kernel.Handle) ([]*job.Job, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockCompanyRepository struct{ mock.Mock }

func (m *MockCompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	args := m.Called(ctx, c)
	return companyOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter company.Filter) ([]*company.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*company.Company), args.Error(1)
}

func (m *MockCompanyRepository) Get(ctx context.Context, handle kernel.Handle) (*company.Company, error) {
	args := m.Called(ctx, handle)
	return companyOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCompanyRepository) Update(
	ctx context.Context, handle kernel.Handle, patch company.Patch,
) (*company.Company, error) {
	args := m.Called(ctx, handle, patch)
	return companyOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, handle kernel.Handle) error {
	return m.Called(ctx, handle).Error(0)
}

func jobOrNil(v any) *job.Job {
	if v == nil {
		return nil
	}
	return v.(*job.Job)
}

func companyOrNil(v any) *company.Company {
	if v == nil {
		return nil
	}
	return v.(*company.Company)
}

func intPtr(v int) *int {
	return &v
}
