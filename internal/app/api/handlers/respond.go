package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pslmedia/backoffice/internal/app/service/auth"
	"github.com/pslmedia/backoffice/internal/app/service/billing"
	"github.com/pslmedia/backoffice/internal/app/service/catalog"
	"github.com/pslmedia/backoffice/internal/app/service/employee"
	"github.com/pslmedia/backoffice/internal/app/service/message"
	"github.com/pslmedia/backoffice/internal/app/service/subscriber"
	"github.com/pslmedia/backoffice/pkg/response"
)

var errInvalidID = errors.New("invalid id")

var notFoundErrs = []error{
	subscriber.ErrNotFound,
	subscriber.ErrPackageNotFound,
	employee.ErrNotFound,
	employee.ErrDesignationNotFound,
	employee.ErrAddressNotFound,
	billing.ErrPaymentNotFound,
	billing.ErrSubscriberNotFound,
	billing.ErrPackageNotFound,
	catalog.ErrNotFound,
	message.ErrSubscriberNotFound,
	message.ErrMessageNotFound,
	auth.ErrEmailNotFound,
}

var conflictErrs = []error{
	subscriber.ErrEmailTaken,
	subscriber.ErrActivePackage,
	employee.ErrEmailTaken,
	employee.ErrCNICTaken,
	catalog.ErrInUse,
}

var badRequestErrs = []error{
	auth.ErrInvalidCredentials,
	auth.ErrInvalidToken,
	auth.ErrTokenExpired,
	employee.ErrWrongPassword,
	billing.ErrInvalidApproval,
}

// fail writes the error envelope, mapping service sentinels to their codes.
// Unknown errors collapse to the opaque server-error code.
func fail(c *gin.Context, err error) {
	code := response.APIResponseCodeError
	switch {
	case matchAny(err, notFoundErrs):
		code = response.APIResponseCodeNotFound
	case matchAny(err, conflictErrs):
		code = response.APIResponseCodeConflict
	case matchAny(err, badRequestErrs):
		code = response.APIResponseCodeBadRequest
	}
	c.JSON(http.StatusOK, response.ErrorT[any](code, err.Error()))
}

func matchAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// badRequest is the binding-failure shortcut.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
}

// ok writes the success envelope.
func ok[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, response.OKT(data))
}
