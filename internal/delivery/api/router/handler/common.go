package handler

import (
	"net/http"
	"strings"

	"leadhub/internal/delivery/api/middleware"
	"leadhub/internal/delivery/api/response"
	"leadhub/internal/domain/entity"
	"leadhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// withCaller resolves the authenticated caller or answers 401.
func withCaller(c echo.Context, fn func(caller *entity.Caller) error) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Caller missing from token")
	}

	return fn(caller)
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// bindPage reads skip, take, order_by and sort from the query string.
func bindPage(c echo.Context) (repository.Pagination, error) {
	var (
		page      repository.Pagination
		sortOrder string
	)

	err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("take", &page.Take).
		String("order_by", &page.OrderBy).
		String("sort", &sortOrder).
		BindError()
	page.SortOrder = repository.SortOrder(strings.ToLower(sortOrder))

	return page, err
}

// optionalUUIDQuery returns nil when the parameter is absent.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
