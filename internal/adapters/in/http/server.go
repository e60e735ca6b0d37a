package http

import (
	"jobly/internal/core/application/usecases/commands"
	"jobly/internal/core/application/usecases/queries"
	"jobly/internal/jobs"
)

// Server holds the use cases behind each route. Handlers return errors and
// leave status mapping to ErrorHandler.
type Server struct {
	// Command handlers
	createJobHandler     commands.CreateJobCommandHandler
	updateJobHandler     commands.UpdateJobCommandHandler
	deleteJobHandler     commands.DeleteJobCommandHandler
	createCompanyHandler commands.CreateCompanyCommandHandler
	updateCompanyHandler commands.UpdateCompanyCommandHandler
	deleteCompanyHandler commands.DeleteCompanyCommandHandler

	// Query handlers
	getJobHandler        queries.GetJobQueryHandler
	listJobsHandler      queries.ListJobsQueryHandler
	getCompanyHandler    queries.GetCompanyQueryHandler
	listCompaniesHandler queries.ListCompaniesQueryHandler

	health *jobs.HealthStatus
}

func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	updateJobHandler commands.UpdateJobCommandHandler,
	deleteJobHandler commands.DeleteJobCommandHandler,
	createCompanyHandler commands.CreateCompanyCommandHandler,
	updateCompanyHandler commands.UpdateCompanyCommandHandler,
	deleteCompanyHandler commands.DeleteCompanyCommandHandler,
	getJobHandler queries.GetJobQueryHandler,
	listJobsHandler queries.ListJobsQueryHandler,
	getCompanyHandler queries.GetCompanyQueryHandler,
	listCompaniesHandler queries.ListCompaniesQueryHandler,
	health *jobs.HealthStatus,
) *Server {
	return &Server{
		createJobHandler:     createJobHandler,
		updateJobHandler:     updateJobHandler,
		deleteJobHandler:     deleteJobHandler,
		createCompanyHandler: createCompanyHandler,
		updateCompanyHandler: updateCompanyHandler,
		deleteCompanyHandler: deleteCompanyHandler,
		getJobHandler:        getJobHandler,
		listJobsHandler:      listJobsHandler,
		getCompanyHandler:    getCompanyHandler,
		listCompaniesHandler: listCompaniesHandler,
		health:               health,
	}
}
