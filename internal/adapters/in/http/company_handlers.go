package http

import (
	"encoding/json"
	"net/http"

	"jobly/internal/core/application/usecases/commands"
	"jobly/internal/core/application/usecases/queries"
	"jobly/internal/core/domain/model/company"
	"jobly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// CreateCompany handles POST /companies.
func (s *Server) CreateCompany(ctx echo.Context) error {
	var req newCompanyRequest
	if err := json.NewDecoder(ctx.Request().Body).Decode(&req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	cmd, err := commands.NewCreateCompanyCommand(req.Handle, req.Name, req.Description, req.NumEmployees, req.LogoURL)
	if err != nil {
		return err
	}

	created, err := s.createCompanyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, map[string]companyResponse{"company": toCompanyResponse(created)})
}

// ListCompanies handles GET /companies?name=&minEmployees=&maxEmployees=.
func (s *Server) ListCompanies(ctx echo.Context) error {
	var (
		name   *string
		filter company.Filter
	)
	params := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "name", params, &name); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("name", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "minEmployees", params, &filter.MinEmployees); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("minEmployees", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "maxEmployees", params, &filter.MaxEmployees); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("maxEmployees", err)
	}
	if name != nil {
		filter.Name = *name
	}

	query, err := queries.NewListCompaniesQuery(filter)
	if err != nil {
		return err
	}

	list, err := s.listCompaniesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	resp := make([]companyResponse, len(list))
	for i, c := range list {
		resp[i] = toCompanyResponse(c)
	}
	return ctx.JSON(http.StatusOK, map[string][]companyResponse{"companies": resp})
}

// GetCompany handles GET /companies/:handle and includes the company's jobs.
func (s *Server) GetCompany(ctx echo.Context) error {
	query, err := queries.NewGetCompanyQuery(ctx.Param("handle"))
	if err != nil {
		return err
	}

	found, err := s.getCompanyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]companyDetailResponse{"company": {
		companyResponse: toCompanyResponse(found.Company),
		Jobs:            toJobResponses(found.Jobs),
	}})
}

// UpdateCompany handles PATCH /companies/:handle. The handle cannot change.
func (s *Server) UpdateCompany(ctx echo.Context) error {
	var fields patchFields
	if err := json.NewDecoder(ctx.Request().Body).Decode(&fields); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	patch, err := toCompanyPatch(fields)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCompanyCommand(ctx.Param("handle"), patch)
	if err != nil {
		return err
	}

	updated, err := s.updateCompanyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]companyResponse{"company": toCompanyResponse(updated)})
}

// DeleteCompany handles DELETE /companies/:handle. Its jobs go with it.
func (s *Server) DeleteCompany(ctx echo.Context) error {
	cmd, err := commands.NewDeleteCompanyCommand(ctx.Param("handle"))
	if err != nil {
		return err
	}

	if err = s.deleteCompanyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, deletedResponse{Deleted: cmd.Handle().String()})
}
