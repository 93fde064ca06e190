package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pslmedia/backoffice/pkg/response"
	"github.com/pslmedia/backoffice/pkg/token"
)

// EmployeeIDKey is the gin context key carrying the authenticated operator id.
const EmployeeIDKey = "employeeID"

// AuthMiddleware verifies the Bearer token and stores the employee id in the
// gin context for handlers to read via EmployeeID.
func AuthMiddleware(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}
		employeeID, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid token"))
			return
		}
		c.Set(EmployeeIDKey, employeeID)
		c.Next()
	}
}

// EmployeeID reads the authenticated operator id set by AuthMiddleware.
func EmployeeID(c *gin.Context) uint {
	if v, ok := c.Get(EmployeeIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
