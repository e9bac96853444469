package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/cartload/cartload/pkg/api/types/errors"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthHandler(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := db.Ping(ctx); err != nil {
			return apierr.ServiceUnavailable("database is not reachable. try again later.", err)
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
