package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"medassist/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

type routerConfig struct {
	observer       RequestObserver
	metricsHandler http.Handler
	swaggerUI      bool
}

// RouterOption customizes NewRouter.
type RouterOption func(*routerConfig)

// WithMetrics records request metrics with observer and serves handler on /metrics.
func WithMetrics(observer RequestObserver, handler http.Handler) RouterOption {
	return func(c *routerConfig) {
		c.observer = observer
		c.metricsHandler = handler
	}
}

// WithSwaggerUI serves the API documentation on /swagger/.
func WithSwaggerUI() RouterOption {
	return func(c *routerConfig) {
		c.swaggerUI = true
	}
}

// NewRouter builds the echo instance serving the API under BasePath.
func NewRouter(server *Server, logger *slog.Logger, opts ...RouterOption) (*echo.Echo, error) {
	var cfg routerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	if cfg.observer != nil {
		e.Use(Metrics(cfg.observer))
	}
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("12M"))

	if cfg.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.metricsHandler))
	}
	if cfg.swaggerUI {
		if err = registerDocs(swagger); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group(BasePath, validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

type apiDoc struct {
	doc string
}

func (d apiDoc) ReadDoc() string {
	return d.doc
}

var registerDocsOnce sync.Once

// registerDocs publishes the contract to swag, which echo-swagger reads for doc.json.
func registerDocs(swagger *openapi3.T) error {
	doc, err := json.Marshal(swagger)
	if err != nil {
		return err
	}
	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{doc: string(doc)})
	})
	return nil
}
