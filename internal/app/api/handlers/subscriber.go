package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/internal/models"
	"github.com/pslmedia/backoffice/internal/platform/mail"
)

// SubscriberItem is the read projection: the account plus its live
// entitlement countdown.
type SubscriberItem struct {
	*models.Subscriber
	DaysRemaining int `json:"days_remaining"`
}

func toSubscriberItem(svc *subscriber.Service, m *models.Subscriber) *SubscriberItem {
	return &SubscriberItem{Subscriber: m, DaysRemaining: svc.DaysRemaining(m)}
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, errInvalidID)
		return 0, false
	}
	return uint(id), true
}

// @Summary      Create subscriber
// @Description  Registers a subscriber and starts the free trial.
// @Tags         Subscribers
// @Accept       json
// @Produce      json
// @Param        request body subscriber.CreateRequest true "New subscriber"
// @Success      200  {object}  handlers.RespSubscriber
// @Router       /api/v1/admin/subscribers [post]
func ApiCreateSubscriber(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscriber.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		sub, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toSubscriberItem(svc, sub))
	}
}

// @Summary      Get subscriber
// @Tags         Subscribers
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespSubscriber
// @Router       /api/v1/admin/subscribers/{id} [get]
func ApiGetSubscriber(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		sub, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toSubscriberItem(svc, sub))
	}
}

type ListSubscribersResponse struct {
	Items []*SubscriberItem `json:"items"`
	Total int64             `json:"total"`
}

// @Summary      List subscribers
// @Description  Paginated, filterable subscriber listing.
// @Tags         Subscribers
// @Accept       json
// @Produce      json
// @Param        request body subscriber.ListRequest true "Filters and pagination"
// @Success      200  {object}  handlers.RespListSubscribers
// @Router       /api/v1/admin/list_subscribers [post]
func ApiListSubscribers(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscriber.ListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.List(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		items := lo.Map(res.Items, func(m *models.Subscriber, _ int) *SubscriberItem {
			return toSubscriberItem(svc, m)
		})
		ok(c, &ListSubscribersResponse{Items: items, Total: res.Total})
	}
}

// @Summary      Update subscriber
// @Description  Partial update; trial fields are never touched.
// @Tags         Subscribers
// @Accept       json
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Param        request body subscriber.UpdateRequest true "Fields to change"
// @Success      200  {object}  handlers.RespSubscriber
// @Router       /api/v1/admin/subscribers/{id} [put]
func ApiUpdateSubscriber(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		var req subscriber.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		sub, err := svc.Update(c.Request.Context(), id, &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toSubscriberItem(svc, sub))
	}
}

// @Summary      Delete subscriber
// @Tags         Subscribers
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/subscribers/{id} [delete]
func ApiDeleteSubscriber(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

// @Summary      Assign package
// @Description  Assigns a package; rejected while another assignment is active.
// @Tags         Subscribers
// @Accept       json
// @Produce      json
// @Param        request body subscriber.AssignPackageRequest true "Assignment"
// @Success      200  {object}  handlers.RespAssignment
// @Router       /api/v1/admin/assign_package [post]
func ApiAssignPackage(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscriber.AssignPackageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		assignment, err := svc.AssignPackage(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, assignment)
	}
}

// @Summary      List package assignments
// @Tags         Subscribers
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespAssignments
// @Router       /api/v1/admin/subscribers/{id}/assignments [get]
func ApiListAssignments(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		rows, err := svc.ListAssignments(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

// @Summary      Run trial sweep
// @Description  Advances trial countdowns and sends pending expiry alerts.
// @Tags         Subscribers
// @Produce      json
// @Success      200  {object}  handlers.RespSweep
// @Router       /api/v1/admin/trial_sweep [post]
func ApiRunTrialSweep(svc *subscriber.Service, mailer mail.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.RunTrialSweep(c.Request.Context(), mailer)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, res)
	}
}

// @Summary      Create note
// @Description  Stores an operator annotation linked to subscribers.
// @Tags         Subscribers
// @Accept       json
// @Produce      json
// @Param        request body subscriber.CreateNoteRequest true "Note"
// @Success      200  {object}  handlers.RespNote
// @Router       /api/v1/admin/notes [post]
func ApiCreateNote(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subscriber.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		note, err := svc.CreateNote(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, note)
	}
}

// @Summary      List subscriber notes
// @Tags         Subscribers
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Success      200  {object}  handlers.RespNotes
// @Router       /api/v1/admin/subscribers/{id}/notes [get]
func ApiListNotes(svc *subscriber.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		notes, err := svc.ListNotes(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, notes)
	}
}

func RegisterSubscriberRoutes(r gin.IRouter, svc *subscriber.Service, mailer mail.Mailer) {
	r.POST("/subscribers", ApiCreateSubscriber(svc))
	r.GET("/subscribers/:id", ApiGetSubscriber(svc))
	r.POST("/list_subscribers", ApiListSubscribers(svc))
	r.PUT("/subscribers/:id", ApiUpdateSubscriber(svc))
	r.DELETE("/subscribers/:id", ApiDeleteSubscriber(svc))
	r.POST("/assign_package", ApiAssignPackage(svc))
	r.GET("/subscribers/:id/assignments", ApiListAssignments(svc))
	r.POST("/trial_sweep", ApiRunTrialSweep(svc, mailer))
	r.POST("/notes", ApiCreateNote(svc))
	r.GET("/subscribers/:id/notes", ApiListNotes(svc))
}
