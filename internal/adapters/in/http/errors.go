package http

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs the shared struct validator into echo.Context.Validate.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator creates the validator used for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{v: validation.New()}
}

// Validate implements echo.Validator.
func (r *RequestValidator) Validate(i any) error {
	return r.v.Struct(i)
}

// bindAndValidate decodes the JSON body into dst and checks its tags.
// Failures are returned as 400 HTTPErrors for ErrorHandler to render.
func bindAndValidate(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+describeFields(err))
	}
	return nil
}

func describeFields(err error) string {
	fields := validation.Fields(err)
	parts := make([]string, 0, len(fields))
	for field, rule := range fields {
		parts = append(parts, fmt.Sprintf("%s failed %s", field, rule))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// statusOf maps use case errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrOrderIsCompleted):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidOrderInput),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, commands.ErrQuantityMustBePositive),
		errors.Is(err, commands.ErrCartLineNameIsRequired),
		errors.Is(err, commands.ErrCartLinePriceIsNegative):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handlerError writes err with the mapped status. Internal failures get the
// generic message so store errors never reach the client.
func handlerError(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		return errorJSON(ctx, code, message)
	}
	return errorJSON(ctx, code, message+": "+err.Error())
}

// ErrorHandler renders errors that escaped the handlers, such as parameter
// binding and contract violations, in the API error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			message = fmt.Sprintf("%s: %v", message, he.Internal)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = errorJSON(ctx, code, message)
}
