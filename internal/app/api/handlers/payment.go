package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pslmedia/backoffice/internal/app/service/billing"
	"github.com/pslmedia/backoffice/pkg/types"
)

// @Summary      Submit payment
// @Description  Records a bank-receipt payment with a pending approval.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body billing.SubmitPaymentRequest true "Payment"
// @Success      200  {object}  handlers.RespPayment
// @Router       /api/v1/admin/payments [post]
func ApiSubmitPayment(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req billing.SubmitPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		payment, err := svc.SubmitPayment(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, payment)
	}
}

// @Summary      List payments
// @Description  All payments, or one subscriber's when subscriber_id is given.
// @Tags         Payments
// @Produce      json
// @Param        subscriber_id query int false "Subscriber ID"
// @Success      200  {object}  handlers.RespPayments
// @Router       /api/v1/admin/payments [get]
func ApiListPayments(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subscriberID uint
		if v := c.Query("subscriber_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				badRequest(c, errInvalidID)
				return
			}
			subscriberID = uint(id)
		}
		rows, err := svc.ListPayments(c.Request.Context(), subscriberID)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

type SetApprovalRequest struct {
	PaymentID    uint                 `json:"payment_id" binding:"required"`
	SubscriberID uint                 `json:"subscriber_id" binding:"required"`
	Approved     types.ApprovalStatus `json:"approved" binding:"required"`
}

// @Summary      Set payment approval
// @Description  Flips the operator decision and recomputes the subscriber's
// @Description  materialized revenue.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body SetApprovalRequest true "Approval decision"
// @Success      200  {object}  handlers.RespRevenue
// @Router       /api/v1/admin/set_approval [post]
func ApiSetApproval(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetApprovalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if _, err := svc.SetApproval(c.Request.Context(), req.PaymentID, req.SubscriberID, req.Approved); err != nil {
			fail(c, err)
			return
		}
		revenue, err := svc.RecomputeRevenue(c.Request.Context(), req.SubscriberID)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, revenue)
	}
}

// @Summary      Get subscriber revenue
// @Description  Materialized approved-payment total; 0 when none.
// @Tags         Payments
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespRevenue
// @Router       /api/v1/admin/subscribers/{id}/revenue [get]
func ApiGetRevenue(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		revenue, err := svc.GetRevenue(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, revenue)
	}
}

// @Summary      Recompute subscriber revenue
// @Description  Re-sums approved payments; idempotent.
// @Tags         Payments
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespRevenue
// @Router       /api/v1/admin/subscribers/{id}/recompute_revenue [post]
func ApiRecomputeRevenue(svc *billing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		revenue, err := svc.RecomputeRevenue(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, revenue)
	}
}

func RegisterPaymentRoutes(r gin.IRouter, svc *billing.Service) {
	r.POST("/payments", ApiSubmitPayment(svc))
	r.GET("/payments", ApiListPayments(svc))
	r.POST("/set_approval", ApiSetApproval(svc))
	r.GET("/subscribers/:id/revenue", ApiGetRevenue(svc))
	r.POST("/subscribers/:id/recompute_revenue", ApiRecomputeRevenue(svc))
}
