package handlers

import (
	"github.com/gin-gonic/gin"

	mw "github.com/pslmedia/backoffice/internal/app/api/middleware"
	"github.com/pslmedia/backoffice/internal/app/service/message"
)

// @Summary      Send message
// @Description  Sends an internal message from the operator to a subscriber.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request body message.SendRequest true "Message"
// @Success      200  {object}  handlers.RespMessage
// @Router       /api/v1/admin/messages [post]
func ApiSendMessage(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req message.SendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		msg, err := svc.Send(c.Request.Context(), mw.EmployeeID(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, msg)
	}
}

// @Summary      Message history
// @Description  A subscriber's messages, newest first.
// @Tags         Messages
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespMessages
// @Router       /api/v1/admin/subscribers/{id}/messages [get]
func ApiMessageHistory(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		rows, err := svc.History(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

// @Summary      Mark message read
// @Tags         Messages
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/messages/{id}/read [post]
func ApiMarkMessageRead(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		if err := svc.MarkRead(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

// @Summary      List contact messages
// @Description  Website contact-form submissions, newest first.
// @Tags         Messages
// @Produce      json
// @Success      200  {object}  handlers.RespContacts
// @Router       /api/v1/admin/contact_messages [get]
func ApiListContactMessages(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListContacts(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

func RegisterMessageRoutes(r gin.IRouter, svc *message.Service) {
	r.POST("/messages", ApiSendMessage(svc))
	r.GET("/subscribers/:id/messages", ApiMessageHistory(svc))
	r.POST("/messages/:id/read", ApiMarkMessageRead(svc))
	r.GET("/contact_messages", ApiListContactMessages(svc))
}
