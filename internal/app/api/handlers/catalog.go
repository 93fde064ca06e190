package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pslmedia/backoffice/internal/app/service/catalog"
	"github.com/pslmedia/backoffice/internal/models"
)

// PackageItem carries the catalog entry with its effective price.
type PackageItem struct {
	*models.Package
	DiscountedPrice int64 `json:"discounted_price"`
}

func toPackageItem(m *models.Package) *PackageItem {
	return &PackageItem{Package: m, DiscountedPrice: m.DiscountedPrice()}
}

// @Summary      Create package
// @Tags         Packages
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateRequest true "New package"
// @Success      200  {object}  handlers.RespPackage
// @Router       /api/v1/admin/packages [post]
func ApiCreatePackage(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		pkg, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toPackageItem(pkg))
	}
}

// @Summary      Get package
// @Tags         Packages
// @Produce      json
// @Param        id path int true "Package ID"
// @Success      200  {object}  handlers.RespPackage
// @Router       /api/v1/admin/packages/{id} [get]
func ApiGetPackage(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		pkg, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toPackageItem(pkg))
	}
}

// @Summary      List packages
// @Tags         Packages
// @Produce      json
// @Success      200  {object}  handlers.RespPackages
// @Router       /api/v1/admin/packages [get]
func ApiListPackages(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, lo.Map(rows, func(m *models.Package, _ int) *PackageItem { return toPackageItem(m) }))
	}
}

// @Summary      Update package
// @Tags         Packages
// @Accept       json
// @Produce      json
// @Param        id path int true "Package ID"
// @Param        request body catalog.UpdateRequest true "Fields to change"
// @Success      200  {object}  handlers.RespPackage
// @Router       /api/v1/admin/packages/{id} [put]
func ApiUpdatePackage(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		var req catalog.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		pkg, err := svc.Update(c.Request.Context(), id, &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, toPackageItem(pkg))
	}
}

// @Summary      Delete package
// @Description  Removes a package no assignment or payment references.
// @Tags         Packages
// @Produce      json
// @Param        id path int true "Package ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/packages/{id} [delete]
func ApiDeletePackage(svc *catalog.Service) gin.HandlerFunc {
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

func RegisterCatalogRoutes(r gin.IRouter, svc *catalog.Service) {
	r.POST("/packages", ApiCreatePackage(svc))
	r.GET("/packages", ApiListPackages(svc))
	r.GET("/packages/:id", ApiGetPackage(svc))
	r.PUT("/packages/:id", ApiUpdatePackage(svc))
	r.DELETE("/packages/:id", ApiDeletePackage(svc))
}
