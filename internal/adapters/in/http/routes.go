package http

import (
	"jobly/internal/pkg/auth"
	"jobly/internal/pkg/logging"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho returns an echo instance with middleware and every route registered.
// Mutating routes check the caller before the request shape, so an anonymous
// caller gets 401 even for a malformed body.
func NewEcho(s *Server, authService *auth.Service, doc *openapi3.T, log *logging.Logger) (*echo.Echo, error) {
	validate, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		AccessLog(log),
		middleware.Recover(),
		auth.Authenticate(authService),
	)

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/jobs", s.CreateJob, auth.EnsureAdmin, validate)
	e.GET("/jobs", s.ListJobs, validate)
	e.GET("/jobs/:id", s.GetJob, validate)
	e.PATCH("/jobs/:id", s.UpdateJob, auth.EnsureAdmin, validate)
	e.DELETE("/jobs/:id", s.DeleteJob, auth.EnsureAdmin, validate)

	e.POST("/companies", s.CreateCompany, auth.EnsureAdmin, validate)
	e.GET("/companies", s.ListCompanies, validate)
	e.GET("/companies/:handle", s.GetCompany, validate)
	e.PATCH("/companies/:handle", s.UpdateCompany, auth.EnsureAdmin, validate)
	e.DELETE("/companies/:handle", s.DeleteCompany, auth.EnsureAdmin, validate)

	return e, nil
}
