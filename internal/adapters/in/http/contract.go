package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const mimeApplicationYAML = "application/yaml"

// Contract validates requests against the OpenAPI document of the API.
type Contract struct {
	raw    []byte
	router routers.Router
}

// LoadContract parses and validates an OpenAPI document.
func LoadContract(document []byte) (*Contract, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	return &Contract{raw: document, router: router}, nil
}

// Middleware rejects requests whose parameters or body break the contract.
// Requests the document does not describe pass through untouched.
func (c *Contract) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()

		route, pathParams, err := c.router.FindRoute(req)
		if err != nil {
			return next(ctx)
		}

		err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
		}

		return next(ctx)
	}
}

// ServeSpec returns the raw document.
func (c *Contract) ServeSpec(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, mimeApplicationYAML, c.raw)
}
