package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AyaAid/Stayabucks/internal/service"
	"github.com/AyaAid/Stayabucks/internal/transport"
	"github.com/AyaAid/Stayabucks/internal/util"
	"github.com/AyaAid/Stayabucks/pkg/logging"
)

type LikeHTTP struct {
	Svc *service.LikeService
}

func (h *LikeHTTP) AddLike(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "likes.add")

	var req transport.AddLikeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_like_failed", "invalid body", err)
	}
	if req.UserID == 0 || req.DrinkCreatedID == 0 {
		return badRequest(l, "add_like_failed", "user_id and drink_created_id required", nil)
	}
	if err := authorizeUser(c, req.UserID); err != nil {
		return fail(l, "add_like_failed", err)
	}

	like, err := h.Svc.AddLike(ctx, req.UserID, req.DrinkCreatedID)
	if err != nil {
		return fail(l, "add_like_failed", err)
	}

	l.Info("like_added", "like_id", like.ID, "drink_created_id", like.DrinkCreatedID)
	return c.JSON(http.StatusCreated, transport.AddLikeResponse{ID: like.ID})
}

func (h *LikeHTTP) CountLikes(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "likes.count")

	id, ok := util.ParseID(c.Param("id"))
	if !ok {
		return badRequest(l, "count_likes_failed", "id must be a positive integer", nil)
	}

	n, err := h.Svc.CountLikes(ctx, id)
	if err != nil {
		return fail(l, "count_likes_failed", err)
	}
	return c.JSON(http.StatusOK, transport.LikeCountResponse{DrinkCreatedID: id, Likes: n})
}
