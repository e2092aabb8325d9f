package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AyaAid/Stayabucks/pkg/db"
	middleware "github.com/AyaAid/Stayabucks/pkg/middleware/auth"
	"github.com/AyaAid/Stayabucks/pkg/middleware/csrf"
)

type Deps struct {
	DB             *gorm.DB
	DrinkHandler   *DrinkHTTP
	LikeHandler    *LikeHTTP
	CatalogHandler *CatalogHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context(), d.DB); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("/api/v1")

	catalog := api.Group("/catalog")
	catalog.GET("/drinks", d.CatalogHandler.ListDrinks)
	catalog.GET("/drinks/search", d.CatalogHandler.SearchDrinks)
	catalog.GET("/drinks/:id", d.CatalogHandler.GetDrink)
	catalog.GET("/supplements", d.CatalogHandler.ListSupplements)
	catalog.GET("/supplement-types", d.CatalogHandler.ListSupplementTypes)

	api.POST("/pricing/quote", d.DrinkHandler.Quote)
	api.GET("/drinks/:id/likes", d.LikeHandler.CountLikes)

	// without a secret the user-scoped routes stay open
	var userMW []echo.MiddlewareFunc
	if len(d.JWTSecret) > 0 {
		userMW = append(userMW,
			middleware.NewRequireAuthMiddleware(d.JWTSecret).RequireAuth,
			csrf.Middleware(csrf.Config{
				EnforceSameOrigin: true,
				Skipper:           csrf.CookieSessionOnly(middleware.AccessCookie),
			}),
		)
	}

	api.POST("/drinks", d.DrinkHandler.CreateDrink, userMW...)
	api.POST("/likes", d.LikeHandler.AddLike, userMW...)

	users := api.Group("/users/:user_id", userMW...)
	users.GET("/drinks", d.DrinkHandler.ListDrinksWithPrice)
	users.GET("/drinks/recent", d.DrinkHandler.ListRecentDrinks)
	users.GET("/history", d.DrinkHandler.History)
}
