package http

import (
	"net/http"
	"sync"

	"kitchenpos/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the OpenAPI document to echo-swagger through the swag registry.
type openAPIDoc struct {
	doc string
}

func (d openAPIDoc) ReadDoc() string {
	return d.doc
}

var registerDocsOnce sync.Once

func registerDocs(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}

	registerDocsOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{doc: string(doc)})
	})
	return nil
}

// NewRouter builds the echo instance: recovery, request ids, access logs, the
// optional rate limiter, OpenAPI request validation, health and API docs.
func NewRouter(server *Server, limiter *RateLimiter) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	if err = registerDocs(swagger); err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger())
	if limiter != nil {
		e.Use(limiter.Middleware())
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return e, nil
}
