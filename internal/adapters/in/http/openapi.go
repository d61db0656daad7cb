package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"orderbot/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

var (
	errReportsDisabled = errors.New("back office reports are disabled")
	errInvalidToken    = errors.New("missing or invalid bearer token")
)

// NewRequestValidator checks every request that matches an operation of the
// contract: security first, then parameters and body. Operations secured with
// bearerAuth accept reportToken only; when reportToken is empty they answer 404.
// Paths outside the contract are passed through untouched.
func NewRequestValidator(swagger *openapi3.T, reportToken string) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: bearerAuth(reportToken),
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return rejectRequest(ctx, err)
			}
			return next(ctx)
		}
	}, nil
}

func bearerAuth(token string) openapi3filter.AuthenticationFunc {
	return func(_ context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != "bearerAuth" {
			return fmt.Errorf("security scheme %s is not supported", input.SecuritySchemeName)
		}
		if token == "" {
			return errReportsDisabled
		}

		header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
		key, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(key), []byte(token)) != 1 {
			return errInvalidToken
		}
		return nil
	}
}

func rejectRequest(ctx echo.Context, err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		for _, e := range securityErr.Errors {
			if errors.Is(e, errReportsDisabled) {
				return ctx.JSON(http.StatusNotFound, servers.Error{
					Code:    http.StatusNotFound,
					Message: "Not found",
				})
			}
		}
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request: " + err.Error(),
	})
}

// apiDoc serves the contract to the swagger UI.
type apiDoc struct {
	json string
}

func (d apiDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

// registerDoc publishes the contract under swag's default instance name, once
// per process.
func registerDoc(swagger *openapi3.T) error {
	data, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi contract: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{json: string(data)})
	})
	return nil
}
