package router

import (
	"net/http"

	"movieRecommender/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.GET("/recommendations/:user_id", handler.Recommend)

	bandit := api.Group("/recommendations_bandit")
	bandit.GET("/:user_id", handler.RecommendBandit)
	bandit.GET("/:user_id/debug", handler.DebugPools)
}

func SetupPreferenceRoutes(api *echo.Group, handler *rest.PreferenceHandler) {
	users := api.Group("/users")

	users.GET("", handler.ListUsers)
	users.GET("/:user_id", handler.GetPreferences)
	users.POST("/:user_id", handler.SavePreferences)
}

func SetupOpsRoutes(e *echo.Echo, catalogSize func() int) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"catalog": catalogSize(),
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
