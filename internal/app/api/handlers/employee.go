package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/pslmedia/backoffice/internal/app/api/middleware"
	"github.com/pslmedia/backoffice/internal/app/service/employee"
)

// @Summary      Create employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request body employee.CreateRequest true "New employee"
// @Success      200  {object}  handlers.RespEmployee
// @Router       /api/v1/admin/employees [post]
func ApiCreateEmployee(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req employee.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		emp, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, emp)
	}
}

// @Summary      Get employee
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      200  {object}  handlers.RespEmployee
// @Router       /api/v1/admin/employees/{id} [get]
func ApiGetEmployee(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		emp, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, emp)
	}
}

// @Summary      List employees
// @Tags         Employees
// @Produce      json
// @Success      200  {object}  handlers.RespEmployees
// @Router       /api/v1/admin/employees [get]
func ApiListEmployees(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.List(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

// @Summary      Update employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        request body employee.UpdateRequest true "Fields to change"
// @Success      200  {object}  handlers.RespEmployee
// @Router       /api/v1/admin/employees/{id} [put]
func ApiUpdateEmployee(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		var req employee.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		emp, err := svc.Update(c.Request.Context(), id, &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, emp)
	}
}

// @Summary      Delete employee
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/employees/{id} [delete]
func ApiDeleteEmployee(svc *employee.Service) gin.HandlerFunc {
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

// @Summary      Update own profile
// @Description  Partial update for the authenticated operator.
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request body employee.UpdateRequest true "Fields to change"
// @Success      200  {object}  handlers.RespEmployee
// @Router       /api/v1/admin/profile [put]
func ApiUpdateProfile(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req employee.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		emp, err := svc.Update(c.Request.Context(), mw.EmployeeID(c), &req)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, emp)
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// @Summary      Change password
// @Description  Verifies the current password before writing the new one.
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Current and new password"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/change_password [post]
func ApiChangePassword(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.ChangePassword(c.Request.Context(), mw.EmployeeID(c), req.CurrentPassword, req.NewPassword); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

type AddAddressRequest struct {
	Address string `json:"address" binding:"required"`
}

// @Summary      Add employee address
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        request body AddAddressRequest true "Address"
// @Success      200  {object}  handlers.RespAddress
// @Router       /api/v1/admin/employees/{id}/addresses [post]
func ApiAddEmployeeAddress(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		var req AddAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		addr, err := svc.AddAddress(c.Request.Context(), id, req.Address)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, addr)
	}
}

// @Summary      List employee addresses
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Success      200  {object}  handlers.RespAddresses
// @Router       /api/v1/admin/employees/{id}/addresses [get]
func ApiListEmployeeAddresses(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		rows, err := svc.ListAddresses(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

// @Summary      Delete employee address
// @Tags         Employees
// @Produce      json
// @Param        id path int true "Employee ID"
// @Param        address_id path int true "Address ID"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/admin/employees/{id}/addresses/{address_id} [delete]
func ApiDeleteEmployeeAddress(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, okID := idParam(c)
		if !okID {
			return
		}
		addressID, err := strconv.ParseUint(c.Param("address_id"), 10, 64)
		if err != nil || addressID == 0 {
			badRequest(c, errInvalidID)
			return
		}
		if err := svc.DeleteAddress(c.Request.Context(), id, uint(addressID)); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

type CreateDesignationRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary      List designations
// @Tags         Employees
// @Produce      json
// @Success      200  {object}  handlers.RespDesignations
// @Router       /api/v1/admin/designations [get]
func ApiListDesignations(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListDesignations(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, rows)
	}
}

// @Summary      Create designation
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request body CreateDesignationRequest true "Designation name"
// @Success      200  {object}  handlers.RespDesignation
// @Router       /api/v1/admin/designations [post]
func ApiCreateDesignation(svc *employee.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateDesignationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		d, err := svc.CreateDesignation(c.Request.Context(), req.Name)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, d)
	}
}

func RegisterEmployeeRoutes(r gin.IRouter, svc *employee.Service) {
	r.POST("/employees", ApiCreateEmployee(svc))
	r.GET("/employees", ApiListEmployees(svc))
	r.GET("/employees/:id", ApiGetEmployee(svc))
	r.PUT("/employees/:id", ApiUpdateEmployee(svc))
	r.DELETE("/employees/:id", ApiDeleteEmployee(svc))
	r.POST("/employees/:id/addresses", ApiAddEmployeeAddress(svc))
	r.GET("/employees/:id/addresses", ApiListEmployeeAddresses(svc))
	r.DELETE("/employees/:id/addresses/:address_id", ApiDeleteEmployeeAddress(svc))
	r.PUT("/profile", ApiUpdateProfile(svc))
	r.POST("/change_password", ApiChangePassword(svc))
	r.GET("/designations", ApiListDesignations(svc))
	r.POST("/designations", ApiCreateDesignation(svc))
}
