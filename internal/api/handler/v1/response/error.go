package response

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/vietanh2810/elections-api/internal/domain"
)

// Err is the error payload every endpoint renders.
type Err struct {
	Err            error `json:"-"` // low-level error, logged only
	HTTPStatusCode int   `json:"-"`

	StatusText string   `json:"status"`
	Code       string   `json:"code"`
	Errors     []string `json:"errors"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.StatusText
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequest flattens ozzo validation errors into one message per field.
func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request.",
		Code:           "bad_request",
		Errors:         messages(err),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Wrong credentials.",
		Code:           "authentication_failed",
		Errors:         []string{err.Error()},
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
		Code:           "unauthorized",
		Errors:         []string{err.Error()},
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		Code:           "internal_error",
		Errors:         []string{"something went wrong"},
	}
}

// ErrFromService renders a service error by its kind. Errors of no known kind
// are internal. caller is prefixed to the logged error chain.
func ErrFromService(caller string, err error) *Err {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return ErrInternalServerError(fmt.Errorf("%s -> %w", caller, err))
	}

	e := &Err{
		Err:    err,
		Errors: []string{domainErr.Message},
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		e.HTTPStatusCode, e.StatusText, e.Code = http.StatusNotFound, "Resource not found.", "not_found"
	case errors.Is(err, domain.ErrConflict):
		e.HTTPStatusCode, e.StatusText, e.Code = http.StatusConflict, "Conflict.", "conflict"
	case errors.Is(err, domain.ErrInvalidState):
		e.HTTPStatusCode, e.StatusText, e.Code = http.StatusUnprocessableEntity, "Invalid state.", "invalid_state"
	case errors.Is(err, domain.ErrInvalidReference):
		e.HTTPStatusCode, e.StatusText, e.Code = http.StatusUnprocessableEntity, "Invalid reference.", "invalid_reference"
	case errors.Is(err, domain.ErrValidation):
		e.HTTPStatusCode, e.StatusText, e.Code = http.StatusBadRequest, "Bad request.", "validation_error"
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return ErrWrongCredentials(domainErr)
	default:
		return ErrInternalServerError(fmt.Errorf("%s -> %w", caller, err))
	}

	return e
}

func messages(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+fieldErrs[field].Error())
	}

	return msgs
}
