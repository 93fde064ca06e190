package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pslmedia/backoffice/internal/app/service/billing"
)

// @Summary      Dashboard stats
// @Description  Subscriber count, all-time revenue and current-month revenue.
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  handlers.RespDashboard
// @Router       /api/v1/admin/dashboard [get]
func ApiGetDashboard(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.GetDashboardStats(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, stats)
	}
}

// @Summary      Monthly revenue chart
// @Description  Approved revenue grouped by calendar month.
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  handlers.RespRevenueChart
// @Router       /api/v1/admin/revenue_chart [get]
func ApiGetRevenueChart(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.GetRevenueChart(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

func RegisterDashboardRoutes(r gin.IRouter, svc *billing.Service) {
	r.GET("/dashboard", ApiGetDashboard(svc))
	r.GET("/revenue_chart", ApiGetRevenueChart(svc))
}
