package handlers

import (
	"github.com/gin-gonic/gin"

	mw "github.com/pslmedia/backoffice/internal/app/api/middleware"
	"github.com/pslmedia/backoffice/internal/app/service/auth"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Operator login
// @Description  Verifies the credential and returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  handlers.RespLogin
// @Router       /api/v1/auth/login [post]
func ApiLogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP(), c.Request.UserAgent())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, res)
	}
}

// @Summary      Operator logout
// @Description  Closes the current session and reports its length in seconds.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  handlers.RespLogout
// @Router       /api/v1/auth/logout [post]
func ApiLogout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		seconds, err := svc.Logout(c.Request.Context(), mw.EmployeeID(c))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, map[string]int64{"session_seconds": seconds})
	}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary      Forgot password
// @Description  Creates a reset token and emails the reset link.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Account email"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/forgot_password [post]
func ApiForgotPassword(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ForgotPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// @Summary      Reset password
// @Description  Consumes a reset token and writes the new password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Token and new password"
// @Success      200  {object}  handlers.RespOK
// @Router       /api/v1/auth/reset_password [post]
func ApiResetPassword(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := svc.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
			fail(c, err)
			return
		}
		ok[any](c, nil)
	}
}

func RegisterAuthRoutes(r gin.IRouter, svc *auth.Service, authMW gin.HandlerFunc) {
	r.POST("/login", ApiLogin(svc))
	r.POST("/logout", authMW, ApiLogout(svc))
	r.POST("/forgot_password", ApiForgotPassword(svc))
	r.POST("/reset_password", ApiResetPassword(svc))
}
