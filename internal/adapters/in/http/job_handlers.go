package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jobly/internal/core/application/usecases/commands"
	"jobly/internal/core/application/usecases/queries"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateJob handles POST /jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req newJobRequest
	if err := json.NewDecoder(ctx.Request().Body).Decode(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	var equity *string
	if req.Equity != nil {
		e, err := parseEquity(*req.Equity)
		if err != nil {
			return err
		}
		text := e.String()
		equity = &text
	}

	cmd, err := commands.NewCreateJobCommand(req.Title, req.Salary, equity, req.CompanyHandle)
	if err != nil {
		return err
	}

	created, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, map[string]jobResponse{"job": toJobResponse(created)})
}

// ListJobs handles GET /jobs?title=&minSalary=&hasEquity=.
func (s *Server) ListJobs(ctx echo.Context) error {
	var (
		title     *string
		minSalary *int
		hasEquity *bool
	)
	params := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "title", params, &title); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("title", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "minSalary", params, &minSalary); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("minSalary", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "hasEquity", params, &hasEquity); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("hasEquity", err)
	}

	filter := job.Filter{MinSalary: minSalary}
	if title != nil {
		filter.Title = *title
	}
	if hasEquity != nil {
		filter.HasEquity = *hasEquity
	}

	query, err := queries.NewListJobsQuery(filter)
	if err != nil {
		return err
	}

	list, err := s.listJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string][]jobResponse{"jobs": toJobResponses(list)})
}

// GetJob handles GET /jobs/:id.
func (s *Server) GetJob(ctx echo.Context) error {
	id, err := jobID(ctx)
	if err != nil {
		return err
	}

	found, err := s.getJobHandler.Handle(ctx.Request().Context(), queries.NewGetJobQuery(id))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]jobResponse{"job": toJobResponse(found)})
}

// UpdateJob handles PATCH /jobs/:id. Only title, salary and equity may change.
func (s *Server) UpdateJob(ctx echo.Context) error {
	id, err := jobID(ctx)
	if err != nil {
		return err
	}

	var fields patchFields
	if err = json.NewDecoder(ctx.Request().Body).Decode(&fields); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	patch, err := toJobPatch(fields)
	if err != nil {
		return err
	}

	updated, err := s.updateJobHandler.Handle(ctx.Request().Context(), commands.NewUpdateJobCommand(id, patch))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]jobResponse{"job": toJobResponse(updated)})
}

// DeleteJob handles DELETE /jobs/:id.
func (s *Server) DeleteJob(ctx echo.Context) error {
	id, err := jobID(ctx)
	if err != nil {
		return err
	}

	if err = s.deleteJobHandler.Handle(ctx.Request().Context(), commands.NewDeleteJobCommand(id)); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, deletedResponse{Deleted: strconv.FormatInt(int64(id), 10)})
}

func jobID(ctx echo.Context) (job.ID, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return job.ID(id), nil
}
