package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pslmedia/backoffice/internal/app/service/catalog"
	"github.com/pslmedia/backoffice/internal/app/service/message"
	"github.com/pslmedia/backoffice/internal/models"
)

// WebHome renders the public marketing page with the package catalog.
func WebHome(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		pkgs, err := cat.List(c.Request.Context())
		if err != nil {
			c.HTML(http.StatusInternalServerError, "index.html", gin.H{"Error": "catalog unavailable"})
			return
		}
		items := lo.Map(pkgs, func(m *models.Package, _ int) *PackageItem { return toPackageItem(m) })
		c.HTML(http.StatusOK, "index.html", gin.H{"Packages": items})
	}
}

// WebContact accepts the contact form, both as a browser form post and JSON.
func WebContact(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req message.ContactRequest
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		msg, err := svc.SubmitContact(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, msg)
	}
}

func RegisterWebsiteRoutes(r gin.IRouter, cat *catalog.Service, msg *message.Service) {
	r.GET("/", WebHome(cat))
	r.POST("/contact", WebContact(msg))
}
