package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apierr "github.com/cartload/cartload/pkg/api/types/errors"
	apisales "github.com/cartload/cartload/pkg/api/types/sales"
	kdborder "github.com/cartload/cartload/pkg/domain/order/db"
)

func GetSalesSummaryHandler(dbOrder kdborder.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		summary, err := dbOrder.Summary(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisales.ComposeSummary(summary))
	}
}

func GetOrderHandler(dbOrder kdborder.OrderInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		orderId := c.Param(paramKey)

		orders, err := dbOrder.Get(ctx, []string{orderId})
		if err != nil {
			return apierr.InternalServerError(err)
		}

		order, ok := orders[orderId]
		if !ok {
			return apierr.NotFound()
		}

		return c.JSON(http.StatusOK, apisales.ComposeOrder(order))
	}
}

func GetCategoryBreakdownHandler(dbOrder kdborder.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		categories, err := dbOrder.CategoryBreakdown(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisales.ComposeCategories(categories))
	}
}

func GetCustomerStatsHandler(dbOrder kdborder.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limit, err := limitParam(c)
		if err != nil {
			return apierr.BadRequest(`query parameter "limit" should be a positive integer`, err)
		}

		customers, err := dbOrder.CustomerStats(ctx, limit)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisales.ComposeCustomers(customers))
	}
}

func GetProductStatsHandler(dbOrder kdborder.OrderInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limit, err := limitParam(c)
		if err != nil {
			return apierr.BadRequest(`query parameter "limit" should be a positive integer`, err)
		}

		products, err := dbOrder.ProductStats(ctx, limit)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apisales.ComposeProducts(products))
	}
}

// limitParam reads the "limit" query parameter.
// Absent means no limit (zero).
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if limit < 0 {
		return 0, strconv.ErrRange
	}
	return limit, nil
}
