package handlers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func routeSet(r *gin.Engine) map[string]bool {
	set := map[string]bool{}
	for _, rt := range r.Routes() {
		set[rt.Method+" "+rt.Path] = true
	}
	return set
}

func TestRegisterAuthRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	RegisterAuthRoutes(r.Group("/api/v1/auth"), nil, noop)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/auth/login"])
	require.True(t, routes["POST /api/v1/auth/logout"])
	require.True(t, routes["POST /api/v1/auth/forgot_password"])
	require.True(t, routes["POST /api/v1/auth/reset_password"])
}

func TestRegisterSubscriberRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterSubscriberRoutes(r.Group("/api/v1/admin"), nil, nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/subscribers"])
	require.True(t, routes["GET /api/v1/admin/subscribers/:id"])
	require.True(t, routes["POST /api/v1/admin/list_subscribers"])
	require.True(t, routes["PUT /api/v1/admin/subscribers/:id"])
	require.True(t, routes["DELETE /api/v1/admin/subscribers/:id"])
	require.True(t, routes["POST /api/v1/admin/assign_package"])
	require.True(t, routes["GET /api/v1/admin/subscribers/:id/assignments"])
	require.True(t, routes["POST /api/v1/admin/trial_sweep"])
	require.True(t, routes["POST /api/v1/admin/notes"])
	require.True(t, routes["GET /api/v1/admin/subscribers/:id/notes"])
}

func TestRegisterEmployeeRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterEmployeeRoutes(r.Group("/api/v1/admin"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/employees"])
	require.True(t, routes["GET /api/v1/admin/employees"])
	require.True(t, routes["GET /api/v1/admin/employees/:id"])
	require.True(t, routes["PUT /api/v1/admin/employees/:id"])
	require.True(t, routes["DELETE /api/v1/admin/employees/:id"])
	require.True(t, routes["POST /api/v1/admin/employees/:id/addresses"])
	require.True(t, routes["GET /api/v1/admin/employees/:id/addresses"])
	require.True(t, routes["DELETE /api/v1/admin/employees/:id/addresses/:address_id"])
	require.True(t, routes["PUT /api/v1/admin/profile"])
	require.True(t, routes["POST /api/v1/admin/change_password"])
	require.True(t, routes["GET /api/v1/admin/designations"])
	require.True(t, routes["POST /api/v1/admin/designations"])
}

func TestRegisterPaymentRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterPaymentRoutes(r.Group("/api/v1/admin"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/payments"])
	require.True(t, routes["GET /api/v1/admin/payments"])
	require.True(t, routes["POST /api/v1/admin/set_approval"])
	require.True(t, routes["GET /api/v1/admin/subscribers/:id/revenue"])
	require.True(t, routes["POST /api/v1/admin/subscribers/:id/recompute_revenue"])
}

func TestRegisterCatalogRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterCatalogRoutes(r.Group("/api/v1/admin"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/packages"])
	require.True(t, routes["GET /api/v1/admin/packages"])
	require.True(t, routes["GET /api/v1/admin/packages/:id"])
	require.True(t, routes["PUT /api/v1/admin/packages/:id"])
	require.True(t, routes["DELETE /api/v1/admin/packages/:id"])
}

func TestRegisterMessageRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterMessageRoutes(r.Group("/api/v1/admin"), nil)

	routes := routeSet(r)
	require.True(t, routes["POST /api/v1/admin/messages"])
	require.True(t, routes["GET /api/v1/admin/subscribers/:id/messages"])
	require.True(t, routes["POST /api/v1/admin/messages/:id/read"])
	require.True(t, routes["GET /api/v1/admin/contact_messages"])
}
