package middleware

import (
	"strconv"
	"time"

	"movieRecommender/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records latency and status per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			metrics.RequestLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()

			return nil
		}
	}
}
