package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pslmedia/backoffice/pkg/response"
	"github.com/pslmedia/backoffice/pkg/token"
)

func authEngine(issuer *token.Issuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(issuer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"employee_id": EmployeeID(c)})
	})
	return r
}

func envelopeCode(t *testing.T, body []byte) response.APIResponseCode {
	t.Helper()
	var env struct {
		Code response.APIResponseCode `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Code
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := authEngine(token.NewIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, response.APIResponseCodeUnauthorized, envelopeCode(t, w.Body.Bytes()))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := authEngine(token.NewIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, response.APIResponseCodeUnauthorized, envelopeCode(t, w.Body.Bytes()))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	issuer := token.NewIssuer("test-secret", time.Hour)
	r := authEngine(issuer)

	tok, err := issuer.Issue(42, "ops@example.com", time.Now())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		EmployeeID uint `json:"employee_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, uint(42), body.EmployeeID)
}
