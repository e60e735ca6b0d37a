package http

import (
	"errors"
	"fmt"
	"net/http"

	"jobly/internal/pkg/auth"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// StatusOf maps an error returned by a handler or middleware to a status code
// and a message safe to show the caller.
func StatusOf(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errs.IsClientError(err):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// ErrorHandler writes every error as {"error": {"message", "status"}}.
// Server errors are logged with their cause; the body stays generic.
func ErrorHandler(log *logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := StatusOf(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Error: errorBody{Message: message, Status: status}})
		}
		if err != nil {
			log.Warn("failed to write error response", "error", err)
		}
	}
}
