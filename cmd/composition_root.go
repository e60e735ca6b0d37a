package cmd

import (
	"jobly/internal/adapters/out/postgres"
	"jobly/internal/adapters/out/postgres/companyrepo"
	"jobly/internal/adapters/out/postgres/jobrepo"
	"jobly/internal/adapters/out/redis"
	"jobly/internal/core/application/usecases/commands"
	"jobly/internal/core/application/usecases/queries"
	"jobly/internal/core/ports"
	"jobly/internal/pkg/logging"

	goredis "github.com/redis/go-redis/v9"
)

// CompositionRoot owns the repositories and hands out use case handlers.
type CompositionRoot struct {
	jobs      ports.JobRepository
	companies ports.CompanyRepository
}

// NewCompositionRoot puts the Redis cache in front of the repositories when
// cache is non-nil.
func NewCompositionRoot(cfg Config, db *postgres.DB, cache goredis.UniversalClient, log *logging.Logger) CompositionRoot {
	var (
		jobs      ports.JobRepository     = jobrepo.NewRepository(db.Pool())
		companies ports.CompanyRepository = companyrepo.NewGormCompanyRepository(db.Gorm())
	)

	if cache != nil {
		jobs = redis.NewJobRepository(jobs, cache, cfg.CacheTTL, log)
		companies = redis.NewCompanyRepository(companies, cache, cfg.CacheTTL, log)
	}

	return CompositionRoot{jobs: jobs, companies: companies}
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobs)
}

func (c *CompositionRoot) CreateUpdateJobCommandHandler() commands.UpdateJobCommandHandler {
	return commands.NewUpdateJobCommandHandler(c.jobs)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	return commands.NewDeleteJobCommandHandler(c.jobs)
}

func (c *CompositionRoot) CreateCreateCompanyCommandHandler() commands.CreateCompanyCommandHandler {
	return commands.NewCreateCompanyCommandHandler(c.companies)
}

func (c *CompositionRoot) CreateUpdateCompanyCommandHandler() commands.UpdateCompanyCommandHandler {
	return commands.NewUpdateCompanyCommandHandler(c.companies)
}

func (c *CompositionRoot) CreateDeleteCompanyCommandHandler() commands.DeleteCompanyCommandHandler {
	return commands.NewDeleteCompanyCommandHandler(c.companies)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.jobs)
}

func (c *CompositionRoot) CreateListJobsQueryHandler() queries.ListJobsQueryHandler {
	return queries.NewListJobsQueryHandler(c.jobs)
}

func (c *CompositionRoot) CreateGetCompanyQueryHandler() queries.GetCompanyQueryHandler {
	return queries.NewGetCompanyQueryHandler(c.companies, c.jobs)
}

func (c *CompositionRoot) CreateListCompaniesQueryHandler() queries.ListCompaniesQueryHandler {
	return queries.NewListCompaniesQueryHandler(c.companies)
}
