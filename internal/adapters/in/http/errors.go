package http

import (
	"errors"
	"log/slog"
	"net/http"

	"staffing/internal/core/application/ingestion"
	"staffing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the structured failure carried by every unsuccessful response.
// Line, Title and Fields are set for rejected ingestion rows only.
type Error struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Line    int                    `json:"line,omitempty"`
	Title   string                 `json:"title,omitempty"`
	Fields  []ingestion.FieldError `json:"fields,omitempty"`
}

// Envelope wraps every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

func successEnvelope(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func failureEnvelope(code int, message string) Envelope {
	return Envelope{Error: &Error{Code: code, Message: message}}
}

// describeError maps an application error onto a status code and body.
func describeError(err error) Error {
	var rowErr *ingestion.RowValidationError
	switch {
	case errors.As(err, &rowErr):
		return Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "job row is invalid",
			Line:    rowErr.Line,
			Title:   rowErr.Title,
			Fields:  rowErr.Fields,
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return Error{Code: http.StatusBadRequest, Message: err.Error()}
	default:
		return Error{Code: http.StatusInternalServerError, Message: "internal error"}
	}
}

// NewErrorHandler renders errors that escape handlers, echo's own included,
// in the response envelope.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var body Error
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			body = Error{Code: httpErr.Code, Message: http.StatusText(httpErr.Code)}
			if msg, ok := httpErr.Message.(string); ok {
				body.Message = msg
			}
		} else {
			body = describeError(err)
		}

		if body.Code >= http.StatusInternalServerError {
			logger.Error("request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err)
		}

		if writeErr := ctx.JSON(body.Code, Envelope{Error: &body}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
