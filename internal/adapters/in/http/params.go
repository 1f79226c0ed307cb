package http

import (
	"net/http"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathUUID binds a simple-style path parameter.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name).SetInternal(err)
	}
	return kernel.UUIDFromBytes(raw[:])
}

// optionalQueryUUID binds a form-style query parameter that may be absent.
func optionalQueryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	var raw *uuid.UUID
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &raw); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+name).SetInternal(err)
	}
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// listRequest binds the list parameters shared by every list endpoint.
// Normalization happens in the query constructors.
func listRequest(c echo.Context) (pagination.Request, error) {
	var (
		page, limit                           *int
		search, sortBy, sortOrder, statusCode *string
	)

	for _, p := range []struct {
		name string
		dest any
	}{
		{"page", &page},
		{"limit", &limit},
		{"search", &search},
		{"sortBy", &sortBy},
		{"sortOrder", &sortOrder},
		{"status", &statusCode},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, c.QueryParams(), p.dest); err != nil {
			return pagination.Request{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter "+p.name).SetInternal(err)
		}
	}

	return pagination.Request{
		Page:      deref(page),
		Limit:     deref(limit),
		Search:    deref(search),
		SortBy:    deref(sortBy),
		SortOrder: deref(sortOrder),
		Status:    deref(statusCode),
	}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
