package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AyaAid/Stayabucks/internal/service"
	"github.com/AyaAid/Stayabucks/internal/transport"
	"github.com/AyaAid/Stayabucks/internal/util"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListDrinks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_drinks")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)
	page = offset/limit + 1

	total, items, err := h.Svc.ListDrinks(ctx, offset, limit)
	if err != nil {
		return fail(l, "list_drinks_failed", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, page, offset, limit, total))
}

func (h *CatalogHTTP) GetDrink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_drink")

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		return badRequest(l, "get_drink_failed", "id must be a positive integer", nil)
	}

	drink, err := h.Svc.GetDrink(ctx, id)
	if err != nil {
		return fail(l, "get_drink_failed", err)
	}
	return c.JSON(http.StatusOK, drink)
}

func (h *CatalogHTTP) SearchDrinks(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_drinks")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)
	page = offset/limit + 1

	total, items, err := h.Svc.SearchDrinks(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		return fail(l, "search_drinks_failed", err)
	}
	return c.JSON(http.StatusOK, transport.NewPage(items, page, offset, limit, total))
}

func (h *CatalogHTTP) ListSupplements(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_supplements")

	var typeID uint
	if raw := c.QueryParam("type_id"); raw != "" {
		id, ok := util.ParseID(raw)
		if !ok {
			return badRequest(l, "list_supplements_failed", "type_id must be a positive integer", nil)
		}
		typeID = id
	}

	items, err := h.Svc.ListSupplements(ctx, typeID)
	if err != nil {
		return fail(l, "list_supplements_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) ListSupplementTypes(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_supplement_types")

	items, err := h.Svc.ListSupplementTypes(ctx)
	if err != nil {
		return fail(l, "list_supplement_types_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}
