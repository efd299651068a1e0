package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestObserver records one finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// OpenAPIValidator rejects requests that break the API contract before they
// reach a handler. Paths outside the contract, such as /metrics, pass through.
// Multipart bodies are left to the handler.
func OpenAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					ExcludeRequestBody: strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm),
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, contractViolation(err))
			}
			return next(ctx)
		}
	}, nil
}

func contractViolation(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		msg := reqErr.Error()
		if first, _, found := strings.Cut(msg, "\n"); found {
			return first
		}
		return msg
	}
	return err.Error()
}

// Metrics reports method, route template, status and latency of every request.
func Metrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := ctx.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveRequest(ctx.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError: true,
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				logger.ErrorContext(ctx.Request().Context(), "request failed", attrs...)
			case v.Error != nil:
				logger.WarnContext(ctx.Request().Context(), "request rejected", attrs...)
			default:
				logger.InfoContext(ctx.Request().Context(), "request", attrs...)
			}
			return nil
		},
	})
}
