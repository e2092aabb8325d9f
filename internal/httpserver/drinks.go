package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AyaAid/Stayabucks/internal/service"
	"github.com/AyaAid/Stayabucks/internal/transport"
	"github.com/AyaAid/Stayabucks/internal/util"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

type DrinkHTTP struct {
	Svc *service.DrinkService
}

func (h *DrinkHTTP) CreateDrink(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "drinks.create")

	var req transport.CreateDrinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_drink_failed", "invalid body", err)
	}
	if req.UserID == 0 || req.DrinkID == 0 {
		return badRequest(l, "create_drink_failed", "user_id and drink_id required", nil)
	}
	if err := authorizeUser(c, req.UserID); err != nil {
		return fail(l, "create_drink_failed", err)
	}

	created, err := h.Svc.CreateDrink(ctx, req.UserID, req.DrinkID, req.SupplementID)
	if err != nil {
		return fail(l, "create_drink_failed", err)
	}

	l.Info("drink_created", "drink_created_id", created.ID, "user_id", created.UserID)
	return c.JSON(http.StatusCreated, transport.CreateDrinkResponse{ID: created.ID})
}

func (h *DrinkHTTP) Quote(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "pricing.quote")

	var req transport.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "quote_failed", "invalid body", err)
	}
	if req.DrinkID == 0 {
		return badRequest(l, "quote_failed", "drink_id required", nil)
	}

	total, err := h.Svc.Quote(ctx, req.DrinkID, req.SupplementID)
	if err != nil {
		return fail(l, "quote_failed", err)
	}
	return c.JSON(http.StatusOK, transport.QuoteResponse{DrinkID: req.DrinkID, TotalPrice: total})
}

func (h *DrinkHTTP) ListDrinksWithPrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "drinks.list_with_price")

	userID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		return badRequest(l, "list_drinks_failed", "user_id must be a positive integer", nil)
	}
	if err := authorizeUser(c, userID); err != nil {
		return fail(l, "list_drinks_failed", err)
	}

	items, err := h.Svc.ListDrinksWithPrice(ctx, userID)
	if err != nil {
		return fail(l, "list_drinks_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DrinkHTTP) ListRecentDrinks(c echo.Context) error {
	return h.recent(c, "drinks.list_recent", util.ParseIntDefault(c.QueryParam("limit"), service.DefaultRecentLimit))
}

// History is the order history view: the default-size recent listing.
func (h *DrinkHTTP) History(c echo.Context) error {
	return h.recent(c, "drinks.history", service.DefaultRecentLimit)
}

func (h *DrinkHTTP) recent(c echo.Context, handler string, limit int) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", handler)

	userID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		return badRequest(l, "list_recent_failed", "user_id must be a positive integer", nil)
	}
	if err := authorizeUser(c, userID); err != nil {
		return fail(l, "list_recent_failed", err)
	}

	items, err := h.Svc.ListRecentDrinks(ctx, userID, limit)
	if err != nil {
		return fail(l, "list_recent_failed", err)
	}
	return c.JSON(http.StatusOK, items)
}
